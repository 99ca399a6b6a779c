package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	for _, c := range All {
		assert.True(t, Valid(c), c)
	}
	assert.False(t, Valid(""))
	assert.False(t, Valid("web development")) // case-sensitive
	assert.False(t, Valid("Astrology"))
}
