package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/localtalent/pkg/profile"
)

type fakeUserRepo struct {
	byEmail map[string]User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{byEmail: map[string]User{}} }

func (r *fakeUserRepo) Create(_ context.Context, u User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type staticTokens struct{ err error }

func (s staticTokens) Generate(_ context.Context, u User) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-" + u.ID.String(), nil
}

type fakeProfiles struct {
	created   []profile.Profile
	createErr error
}

func (f *fakeProfiles) Create(_ context.Context, accountID uuid.UUID, role profile.Role) (profile.Profile, error) {
	if f.createErr != nil {
		return profile.Profile{}, f.createErr
	}
	p := profile.Profile{ID: uuid.New(), AccountID: accountID, Role: role}
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeProfiles) GetByAccount(context.Context, uuid.UUID) (*profile.Profile, error) {
	return nil, nil
}

func (f *fakeProfiles) Update(context.Context, uuid.UUID, profile.Update) (profile.Profile, error) {
	return profile.Profile{}, nil
}

func (f *fakeProfiles) Watch(context.Context, uuid.UUID) (<-chan profile.Profile, error) {
	return nil, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("without role: account only, no profile", func(t *testing.T) {
		profiles := &fakeProfiles{}
		svc := NewAuthService(newFakeUserRepo(), staticTokens{}, profiles)

		res, err := svc.Register(ctx, "a@example.com", "secret1", "")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Nil(t, res.Profile)
		assert.Empty(t, profiles.created)
	})

	t.Run("with role: provisions the profile", func(t *testing.T) {
		profiles := &fakeProfiles{}
		svc := NewAuthService(newFakeUserRepo(), staticTokens{}, profiles)

		res, err := svc.Register(ctx, "b@example.com", "secret1", profile.RoleFreelancer)
		require.NoError(t, err)
		require.NotNil(t, res.Profile)
		assert.Equal(t, res.User.ID, res.Profile.AccountID)
		assert.Equal(t, profile.RoleFreelancer, res.Profile.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), staticTokens{}, &fakeProfiles{})
		_, err := svc.Register(ctx, "c@example.com", "secret1", profile.Role("admin"))
		assert.ErrorIs(t, err, profile.ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo, staticTokens{}, &fakeProfiles{})
		_, err := svc.Register(ctx, "d@example.com", "secret1", "")
		require.NoError(t, err)
		_, err = svc.Register(ctx, "d@example.com", "other", "")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo(), staticTokens{}, &fakeProfiles{})
		_, err := svc.Register(ctx, "", "secret1", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = svc.Register(ctx, "e@example.com", "", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("profile failure aborts with no token", func(t *testing.T) {
		profiles := &fakeProfiles{createErr: errors.New("db down")}
		svc := NewAuthService(newFakeUserRepo(), staticTokens{}, profiles)

		res, err := svc.Register(ctx, "f@example.com", "secret1", profile.RoleBusiness)
		require.Error(t, err)
		assert.Empty(t, res.Token)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo, staticTokens{}, &fakeProfiles{})
		_, err := svc.Register(ctx, "g@example.com", "secret1", "")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", repo.byEmail["g@example.com"].PasswordHash)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, staticTokens{}, &fakeProfiles{})

	_, err := svc.Register(ctx, "user@example.com", "secret1", "")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		res, err := svc.Login(ctx, "user@example.com", "secret1")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "user@example.com", res.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "user@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
