package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role is the account category fixed at onboarding. It determines which
// listing type and workflow side the account participates in.
type Role string

const (
	RoleBusiness   Role = "business"
	RoleFreelancer Role = "freelancer"
)

func (r Role) Valid() bool { return r == RoleBusiness || r == RoleFreelancer }

// Profile is the single per-account profile record.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Role        Role      `json:"role"`
	FullName    string    `json:"full_name"`
	CompanyName string    `json:"company_name,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Skills      []string  `json:"skills,omitempty"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// Update carries the editable fields. Account identity and role are fixed at
// creation and intentionally absent here.
type Update struct {
	FullName    string
	CompanyName string
	Bio         string
	Skills      []string
	Location    string
}

var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
	ErrInvalidRole   = errors.New("invalid role")
)

// Repository abstracts persistence of profile rows. Update implementations
// must never write the role column.
type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByAccount(ctx context.Context, accountID uuid.UUID) (Profile, error)
	Update(ctx context.Context, accountID uuid.UUID, upd Update) (Profile, error)
}

// Feed is the live change channel for profile rows: every successful write
// is published, and Watch delivers rows for one account until ctx ends.
type Feed interface {
	Publish(ctx context.Context, p Profile) error
	Watch(ctx context.Context, accountID uuid.UUID) (<-chan Profile, error)
}
