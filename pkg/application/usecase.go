package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/localtalent/pkg/listing"
	"github.com/mkravets/localtalent/pkg/notification"
)

// SubmitInput is a freelancer's bid against a job listing.
type SubmitInput struct {
	JobID        uuid.UUID
	FreelancerID uuid.UUID
	CoverLetter  string
	ProposedRate float64
}

// UseCase mediates the application lifecycle between freelancer and
// business. Every state transition emits a best-effort notification: the
// application write is the durable outcome, the notification is advisory
// and its failure is logged and swallowed.
type UseCase interface {
	Submit(ctx context.Context, in SubmitInput) (Application, error)
	ListForListing(ctx context.Context, businessID, listingID uuid.UUID) ([]WithApplicant, error)
	ListForFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]WithListing, error)
	ListForBusiness(ctx context.Context, businessID uuid.UUID) ([]WithApplicant, error)
	UpdateStatus(ctx context.Context, businessID, id uuid.UUID, status Status) (Application, error)
}

type service struct {
	repo     Repository
	listings listing.Repository
	sender   *notification.Sender
}

func NewService(repo Repository, listings listing.Repository, sender *notification.Sender) UseCase {
	return &service{repo: repo, listings: listings, sender: sender}
}

func (s *service) Submit(ctx context.Context, in SubmitInput) (Application, error) {
	in.CoverLetter = strings.TrimSpace(in.CoverLetter)
	if in.CoverLetter == "" {
		return Application{}, ErrValidation("cover letter is required")
	}
	if in.ProposedRate < 0 {
		return Application{}, ErrValidation("proposed rate must be non-negative")
	}
	lst, err := s.listings.GetByIDAny(ctx, in.JobID)
	if err != nil {
		return Application{}, err
	}
	a := Application{
		ID:           uuid.New(),
		JobID:        in.JobID,
		FreelancerID: in.FreelancerID,
		CoverLetter:  in.CoverLetter,
		ProposedRate: in.ProposedRate,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	s.sender.Send(ctx, notification.Notification{
		AccountID: lst.BusinessID,
		Type:      notification.TypeJobApplication,
		Title:     "New Job Application",
		Message:   fmt.Sprintf("Someone applied to your job posting: %s", lst.Title),
		Data:      notification.Payload{JobID: lst.ID, ApplicationID: a.ID},
	})
	return a, nil
}

func (s *service) ListForListing(ctx context.Context, businessID, listingID uuid.UUID) ([]WithApplicant, error) {
	lst, err := s.listings.GetByIDAny(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if lst.BusinessID != businessID {
		return nil, ErrNotOwner
	}
	return s.repo.ListByListing(ctx, listingID)
}

func (s *service) ListForFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]WithListing, error) {
	return s.repo.ListByFreelancer(ctx, freelancerID)
}

func (s *service) ListForBusiness(ctx context.Context, businessID uuid.UUID) ([]WithApplicant, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}

func (s *service) UpdateStatus(ctx context.Context, businessID, id uuid.UUID, status Status) (Application, error) {
	if !status.Terminal() {
		return Application{}, ErrValidation("status must be accepted or rejected")
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	lst, err := s.listings.GetByIDAny(ctx, a.JobID)
	if err != nil {
		return Application{}, err
	}
	if lst.BusinessID != businessID {
		return Application{}, ErrNotOwner
	}
	// Conditional write: a concurrent accept/reject that already landed
	// makes this a no-op error instead of overwriting a terminal status.
	if err := s.repo.UpdateStatusIfPending(ctx, id, status); err != nil {
		return Application{}, err
	}
	a.Status = status
	s.sender.Send(ctx, notification.Notification{
		AccountID: a.FreelancerID,
		Type:      notification.TypeApplicationStatus,
		Title:     fmt.Sprintf("Application %s", status),
		Message:   fmt.Sprintf("Your application for %q has been %s", lst.Title, status),
		Data:      notification.Payload{JobID: lst.ID, ApplicationID: a.ID},
	})
	return a, nil
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
