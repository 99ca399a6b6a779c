package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain list",
			raw:  "Go, PostgreSQL, Redis",
			want: []string{"Go", "PostgreSQL", "Redis"},
		},
		{
			name: "trims whitespace",
			raw:  "  plumbing ,  wiring  ",
			want: []string{"plumbing", "wiring"},
		},
		{
			name: "drops empty segments",
			raw:  "design,,,photography,",
			want: []string{"design", "photography"},
		},
		{
			name: "dedupes case-insensitively, first spelling wins",
			raw:  "React, react, REACT, Vue",
			want: []string{"React", "Vue"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "only commas",
			raw:  ",,,",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.raw))
		})
	}
}
