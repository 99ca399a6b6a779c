package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status of a job application. Pending is the only initial state; accepted
// and rejected are terminal — no transition leaves them.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool { return s == StatusAccepted || s == StatusRejected }

// Application is a freelancer's bid against a job listing.
type Application struct {
	ID           uuid.UUID `json:"id"`
	JobID        uuid.UUID `json:"job_id"`
	FreelancerID uuid.UUID `json:"freelancer_id"`
	CoverLetter  string    `json:"cover_letter"`
	ProposedRate float64   `json:"proposed_rate"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// WithApplicant is the business-side view: the application joined with the
// applicant's display name.
type WithApplicant struct {
	Application
	ApplicantName string `json:"applicant_name"`
}

// WithListing is the freelancer-side view: the application joined with the
// parent listing's title and company.
type WithListing struct {
	Application
	ListingTitle string `json:"listing_title"`
	CompanyName  string `json:"company_name"`
}

var (
	ErrNotFound   = errors.New("application not found")
	ErrNotPending = errors.New("application is no longer pending")
	ErrNotOwner   = errors.New("listing belongs to another account")
)

// Repository abstracts persistence of applications. All list methods return
// rows newest first. A missing applicant profile must not fail a list: the
// display name falls back to a placeholder.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]WithApplicant, error)
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]WithListing, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]WithApplicant, error)
	// UpdateStatusIfPending writes the new status only while the current
	// status is still pending, and reports ErrNotPending otherwise. This
	// is what makes a double accept/reject harmless.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status Status) error
}
