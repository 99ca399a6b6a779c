package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rows      []Notification
	createErr error
	lastLimit int
}

func (r *fakeRepo) Create(_ context.Context, n Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.rows = append(r.rows, n)
	return nil
}

func (r *fakeRepo) ListRecent(_ context.Context, accountID uuid.UUID, limit int) ([]Notification, error) {
	r.lastLimit = limit
	var out []Notification
	for _, n := range r.rows {
		if n.AccountID == accountID {
			out = append(out, n)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func TestRecent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewService(repo)
	accountID := uuid.New()

	_, err := svc.Recent(ctx, accountID, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit, "zero limit falls back to the default")

	_, err = svc.Recent(ctx, accountID, -3)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)

	_, err = svc.Recent(ctx, accountID, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, repo.lastLimit)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewService(repo)

	n := Notification{ID: uuid.New(), AccountID: uuid.New()}
	require.NoError(t, repo.Create(ctx, n))

	require.NoError(t, svc.MarkRead(ctx, n.ID))
	assert.True(t, repo.rows[0].Read)

	// Marking again is a no-op, not an error.
	require.NoError(t, svc.MarkRead(ctx, n.ID))

	assert.ErrorIs(t, svc.MarkRead(ctx, uuid.New()), ErrNotFound)
}

func TestSenderSend(t *testing.T) {
	ctx := context.Background()

	t.Run("fills id and timestamp", func(t *testing.T) {
		repo := &fakeRepo{}
		NewSender(repo).Send(ctx, Notification{
			AccountID: uuid.New(),
			Type:      TypeJobApplication,
			Title:     "New Job Application",
		})
		require.Len(t, repo.rows, 1)
		assert.NotEqual(t, uuid.Nil, repo.rows[0].ID)
		assert.False(t, repo.rows[0].CreatedAt.IsZero())
		assert.False(t, repo.rows[0].Read)
	})

	t.Run("swallows repository failure", func(t *testing.T) {
		repo := &fakeRepo{createErr: errors.New("db down")}
		// Must not panic or surface the error.
		NewSender(repo).Send(ctx, Notification{AccountID: uuid.New(), Type: TypeApplicationStatus})
		assert.Empty(t, repo.rows)
	})
}
