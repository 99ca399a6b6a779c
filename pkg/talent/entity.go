package talent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Listing is a freelancer's self-posted service offering. Unlike job
// listings it has no application workflow attached.
type Listing struct {
	ID           uuid.UUID `json:"id"`
	FreelancerID uuid.UUID `json:"freelancer_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	HourlyRate   float64   `json:"hourly_rate"`
	Location     string    `json:"location"`
	Skills       []string  `json:"skills"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrNotFound = errors.New("talent listing not found")

type Repository interface {
	Create(ctx context.Context, l Listing) error
	GetByIDAny(ctx context.Context, id uuid.UUID) (Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Listing, error)
	ListAll(ctx context.Context, limit, offset int) ([]Listing, error)
	UpdateForOwner(ctx context.Context, ownerID uuid.UUID, l Listing) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
