package listing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID map[uuid.UUID]Listing
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byID: map[uuid.UUID]Listing{}} }

func (r *fakeRepo) Create(_ context.Context, l Listing) error {
	r.byID[l.ID] = l
	return nil
}

func (r *fakeRepo) GetByIDAny(_ context.Context, id uuid.UUID) (Listing, error) {
	l, ok := r.byID[id]
	if !ok {
		return Listing{}, ErrNotFound
	}
	return l, nil
}

func (r *fakeRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]Listing, error) {
	var out []Listing
	for _, l := range r.byID {
		if l.BusinessID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOpen(_ context.Context, _, _ int) ([]Listing, error) {
	var out []Listing
	for _, l := range r.byID {
		if l.Status == StatusOpen {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateForOwner(_ context.Context, ownerID uuid.UUID, l Listing) error {
	cur, ok := r.byID[l.ID]
	if !ok || cur.BusinessID != ownerID {
		return ErrNotFound
	}
	l.BusinessID = cur.BusinessID
	l.CreatedAt = cur.CreatedAt
	r.byID[l.ID] = l
	return nil
}

func (r *fakeRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	cur, ok := r.byID[id]
	if !ok || cur.BusinessID != ownerID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func validListing(ownerID uuid.UUID) Listing {
	return Listing{
		BusinessID:  ownerID,
		Title:       "Fix kitchen sink",
		Description: "Leaking trap, needs replacement",
		Category:    "Other",
		Budget:      150,
		Location:    "Denver",
	}
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("success sets defaults", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		l, err := svc.Create(ctx, validListing(owner), "plumbing, Plumbing, soldering")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, l.ID)
		assert.Equal(t, StatusOpen, l.Status)
		assert.False(t, l.CreatedAt.IsZero())
		assert.Equal(t, []string{"plumbing", "soldering"}, l.SkillsRequired)
	})

	invalid := []struct {
		name   string
		mutate func(*Listing)
	}{
		{"empty title", func(l *Listing) { l.Title = "  " }},
		{"empty description", func(l *Listing) { l.Description = "" }},
		{"empty location", func(l *Listing) { l.Location = "" }},
		{"unknown category", func(l *Listing) { l.Category = "Quantum Plumbing" }},
		{"negative budget", func(l *Listing) { l.Budget = -1 }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo())
			l := validListing(owner)
			tt.mutate(&l)
			_, err := svc.Create(ctx, l, "")
			var verr ErrValidation
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestBrowseOnlyOpen(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)
	owner := uuid.New()

	open, err := svc.Create(ctx, validListing(owner), "")
	require.NoError(t, err)

	closed := open
	closed.Status = StatusClosed
	_, err = svc.Update(ctx, owner, closed, "")
	require.NoError(t, err)

	second, err := svc.Create(ctx, validListing(owner), "")
	require.NoError(t, err)

	got, err := svc.Browse(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)
}

func TestUpdateListing(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)
	owner := uuid.New()

	created, err := svc.Create(ctx, validListing(owner), "plumbing")
	require.NoError(t, err)

	t.Run("owner can update", func(t *testing.T) {
		upd := created
		upd.Title = "Fix bathroom sink"
		got, err := svc.Update(ctx, owner, upd, "plumbing, tiling")
		require.NoError(t, err)
		assert.Equal(t, "Fix bathroom sink", got.Title)
		assert.Equal(t, []string{"plumbing", "tiling"}, got.SkillsRequired)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), created, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		upd := created
		upd.Status = Status("archived")
		_, err := svc.Update(ctx, owner, upd, "")
		var verr ErrValidation
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDeleteListing(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)
	owner := uuid.New()

	created, err := svc.Create(ctx, validListing(owner), "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), created.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
