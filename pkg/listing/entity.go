package listing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status of a job listing. Only open listings appear in the public browse
// view.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool { return s == StatusOpen || s == StatusClosed }

// Listing is a job posting owned by a business account.
type Listing struct {
	ID             uuid.UUID `json:"id"`
	BusinessID     uuid.UUID `json:"business_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Budget         float64   `json:"budget"`
	Location       string    `json:"location"`
	SkillsRequired []string  `json:"skills_required"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

var ErrNotFound = errors.New("listing not found")

// Repository — owner-scoped mutations, unscoped reads for cross-account
// views (browse, application joins).
type Repository interface {
	Create(ctx context.Context, l Listing) error
	GetByIDAny(ctx context.Context, id uuid.UUID) (Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Listing, error)
	ListOpen(ctx context.Context, limit, offset int) ([]Listing, error)
	UpdateForOwner(ctx context.Context, ownerID uuid.UUID, l Listing) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
