package talent

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
		if l.FreelancerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(_ context.Context, _, _ int) ([]Listing, error) {
	out := make([]Listing, 0, len(r.byID))
	for _, l := range r.byID {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeRepo) UpdateForOwner(_ context.Context, ownerID uuid.UUID, l Listing) error {
	cur, ok := r.byID[l.ID]
	if !ok || cur.FreelancerID != ownerID {
		return ErrNotFound
	}
	l.FreelancerID = cur.FreelancerID
	l.CreatedAt = cur.CreatedAt
	r.byID[l.ID] = l
	return nil
}

func (r *fakeRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	cur, ok := r.byID[id]
	if !ok || cur.FreelancerID != ownerID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func validOffering(ownerID uuid.UUID) Listing {
	return Listing{
		FreelancerID: ownerID,
		Title:        "Portrait photography",
		Description:  "Outdoor and studio sessions",
		Category:     "Photography",
		HourlyRate:   80,
		Location:     "Seattle",
		ContactEmail: "sam@example.com",
	}
}

func TestCreateOffering(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		l, err := svc.Create(ctx, validOffering(owner), "lighting, Lighting, retouching")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, l.ID)
		assert.False(t, l.CreatedAt.IsZero())
		assert.Equal(t, []string{"lighting", "retouching"}, l.Skills)
	})

	invalid := []struct {
		name   string
		mutate func(*Listing)
	}{
		{"empty title", func(l *Listing) { l.Title = "" }},
		{"empty contact email", func(l *Listing) { l.ContactEmail = "  " }},
		{"unknown category", func(l *Listing) { l.Category = "Palmistry" }},
		{"negative rate", func(l *Listing) { l.HourlyRate = -5 }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo())
			l := validOffering(owner)
			tt.mutate(&l)
			_, err := svc.Create(ctx, l, "")
			var verr ErrValidation
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestUpdateOffering(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)
	owner := uuid.New()

	created, err := svc.Create(ctx, validOffering(owner), "")
	require.NoError(t, err)

	upd := created
	upd.HourlyRate = 95
	got, err := svc.Update(ctx, owner, upd, "lighting")
	require.NoError(t, err)
	assert.Equal(t, float64(95), got.HourlyRate)
	assert.Equal(t, []string{"lighting"}, got.Skills)

	_, err = svc.Update(ctx, uuid.New(), created, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOffering(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)
	owner := uuid.New()

	created, err := svc.Create(ctx, validOffering(owner), "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), created.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, owner, created.ID))
}
