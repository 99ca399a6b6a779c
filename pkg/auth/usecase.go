package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkravets/localtalent/pkg/profile"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	// Register creates the account and, when a role is supplied,
	// provisions the profile row in the same flow. A failed profile
	// write aborts registration: no token is issued and the caller is
	// left unauthenticated.
	Register(ctx context.Context, email, password string, role profile.Role) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	User    User
	Profile *profile.Profile
	Token   string
}

type authService struct {
	repo     UserRepository
	tokens   TokenGenerator
	profiles profile.UseCase
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator, profiles profile.UseCase) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, profiles: profiles}
}

func (s *authService) Register(ctx context.Context, email, password string, role profile.Role) (AuthResult, error) {
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if role != "" && !role.Valid() {
		return AuthResult{}, profile.ErrInvalidRole
	}

	// If user exists, fail fast (best-effort check)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	var prof *profile.Profile
	if role != "" {
		p, err := s.profiles.Create(ctx, user.ID, role)
		if err != nil {
			return AuthResult{}, fmt.Errorf("provision profile: %w", err)
		}
		prof = &p
	}

	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Profile: prof, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}
