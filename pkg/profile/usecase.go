package profile

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates profile management. A profile is created exactly once
// per account, at role selection, with empty display fields that are filled
// in later via Update.
type UseCase interface {
	Create(ctx context.Context, accountID uuid.UUID, role Role) (Profile, error)
	// GetByAccount returns nil without error when the account has no
	// profile yet.
	GetByAccount(ctx context.Context, accountID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, accountID uuid.UUID, upd Update) (Profile, error)
	Watch(ctx context.Context, accountID uuid.UUID) (<-chan Profile, error)
}

type service struct {
	repo Repository
	feed Feed
}

// NewService returns the default UseCase. feed may be nil, in which case no
// live updates are published.
func NewService(repo Repository, feed Feed) UseCase {
	return &service{repo: repo, feed: feed}
}

func (s *service) Create(ctx context.Context, accountID uuid.UUID, role Role) (Profile, error) {
	if !role.Valid() {
		return Profile{}, ErrInvalidRole
	}
	p := Profile{
		ID:        uuid.New(),
		AccountID: accountID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	s.publish(ctx, p)
	return p, nil
}

func (s *service) GetByAccount(ctx context.Context, accountID uuid.UUID) (*Profile, error) {
	p, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *service) Update(ctx context.Context, accountID uuid.UUID, upd Update) (Profile, error) {
	current, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return Profile{}, err
	}
	upd.FullName = strings.TrimSpace(upd.FullName)
	upd.Location = strings.TrimSpace(upd.Location)
	if upd.FullName == "" {
		return Profile{}, ErrValidation("full name is required")
	}
	if upd.Location == "" {
		return Profile{}, ErrValidation("location is required")
	}
	// Role-scoped fields: company name belongs to businesses, the skill
	// list to freelancers.
	switch current.Role {
	case RoleBusiness:
		upd.Skills = nil
	case RoleFreelancer:
		upd.CompanyName = ""
	}
	updated, err := s.repo.Update(ctx, accountID, upd)
	if err != nil {
		return Profile{}, err
	}
	s.publish(ctx, updated)
	return updated, nil
}

func (s *service) Watch(ctx context.Context, accountID uuid.UUID) (<-chan Profile, error) {
	return s.feed.Watch(ctx, accountID)
}

// publish pushes the row to the live feed. The write is already durable, so
// feed failures are logged and swallowed.
func (s *service) publish(ctx context.Context, p Profile) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, p); err != nil {
		log.Printf("profile feed: publish for %s failed: %v", p.AccountID, err)
	}
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
