package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byAccount map[uuid.UUID]Profile
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byAccount: map[uuid.UUID]Profile{}}
}

func (r *fakeRepo) Create(_ context.Context, p Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byAccount[p.AccountID]; ok {
		return ErrAlreadyExists
	}
	r.byAccount[p.AccountID] = p
	return nil
}

func (r *fakeRepo) GetByAccount(_ context.Context, accountID uuid.UUID) (Profile, error) {
	p, ok := r.byAccount[accountID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) Update(_ context.Context, accountID uuid.UUID, upd Update) (Profile, error) {
	p, ok := r.byAccount[accountID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	p.FullName = upd.FullName
	p.CompanyName = upd.CompanyName
	p.Bio = upd.Bio
	p.Skills = upd.Skills
	p.Location = upd.Location
	r.byAccount[accountID] = p
	return p, nil
}

type fakeFeed struct {
	published []Profile
	err       error
}

func (f *fakeFeed) Publish(_ context.Context, p Profile) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, p)
	return nil
}

func (f *fakeFeed) Watch(context.Context, uuid.UUID) (<-chan Profile, error) {
	ch := make(chan Profile)
	close(ch)
	return ch, nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid role", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nil)
		_, err := svc.Create(ctx, uuid.New(), Role("admin"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("creates once with empty display fields", func(t *testing.T) {
		repo := newFakeRepo()
		feed := &fakeFeed{}
		svc := NewService(repo, feed)
		accountID := uuid.New()

		p, err := svc.Create(ctx, accountID, RoleFreelancer)
		require.NoError(t, err)
		assert.Equal(t, accountID, p.AccountID)
		assert.Equal(t, RoleFreelancer, p.Role)
		assert.Empty(t, p.FullName)
		assert.Len(t, feed.published, 1)

		_, err = svc.Create(ctx, accountID, RoleBusiness)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("feed failure does not fail the write", func(t *testing.T) {
		repo := newFakeRepo()
		feed := &fakeFeed{err: errors.New("redis down")}
		svc := NewService(repo, feed)

		p, err := svc.Create(ctx, uuid.New(), RoleBusiness)
		require.NoError(t, err)
		_, stored := repo.byAccount[p.AccountID]
		assert.True(t, stored)
	})
}

func TestGetByAccount(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	t.Run("absent profile is nil, not an error", func(t *testing.T) {
		p, err := svc.GetByAccount(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("present profile", func(t *testing.T) {
		created, err := svc.Create(ctx, uuid.New(), RoleBusiness)
		require.NoError(t, err)

		p, err := svc.GetByAccount(ctx, created.AccountID)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, created.ID, p.ID)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, role Role) (UseCase, *fakeRepo, uuid.UUID) {
		repo := newFakeRepo()
		svc := NewService(repo, nil)
		p, err := svc.Create(ctx, uuid.New(), role)
		require.NoError(t, err)
		return svc, repo, p.AccountID
	}

	t.Run("requires full name and location", func(t *testing.T) {
		svc, _, accountID := setup(t, RoleFreelancer)

		_, err := svc.Update(ctx, accountID, Update{Location: "Austin"})
		var verr ErrValidation
		assert.ErrorAs(t, err, &verr)

		_, err = svc.Update(ctx, accountID, Update{FullName: "Jordan Lee", Location: "   "})
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("business update drops skills", func(t *testing.T) {
		svc, _, accountID := setup(t, RoleBusiness)

		p, err := svc.Update(ctx, accountID, Update{
			FullName:    "Jordan Lee",
			Location:    "Austin",
			CompanyName: "Lee & Co",
			Skills:      []string{"sneaked", "in"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Lee & Co", p.CompanyName)
		assert.Nil(t, p.Skills)
	})

	t.Run("freelancer update drops company name", func(t *testing.T) {
		svc, _, accountID := setup(t, RoleFreelancer)

		p, err := svc.Update(ctx, accountID, Update{
			FullName:    "Sam Rivera",
			Location:    "Portland",
			CompanyName: "sneaked in",
			Skills:      []string{"carpentry"},
		})
		require.NoError(t, err)
		assert.Empty(t, p.CompanyName)
		assert.Equal(t, []string{"carpentry"}, p.Skills)
	})

	t.Run("role survives update", func(t *testing.T) {
		svc, repo, accountID := setup(t, RoleFreelancer)

		_, err := svc.Update(ctx, accountID, Update{FullName: "Sam Rivera", Location: "Portland"})
		require.NoError(t, err)
		assert.Equal(t, RoleFreelancer, repo.byAccount[accountID].Role)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nil)
		_, err := svc.Update(ctx, uuid.New(), Update{FullName: "x", Location: "y"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
