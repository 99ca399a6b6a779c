package talent

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/localtalent/pkg/category"
	"github.com/mkravets/localtalent/pkg/skills"
)

// UseCase encapsulates talent listing management. Structurally the same as
// job listings, pure CRUD.
type UseCase interface {
	Create(ctx context.Context, l Listing, rawSkills string) (Listing, error)
	ListOwn(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Listing, error)
	Browse(ctx context.Context, limit, offset int) ([]Listing, error)
	Update(ctx context.Context, ownerID uuid.UUID, l Listing, rawSkills string) (Listing, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, l Listing, rawSkills string) (Listing, error) {
	if err := validate(&l); err != nil {
		return Listing{}, err
	}
	l.ID = uuid.New()
	l.Skills = skills.ParseList(rawSkills)
	l.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (s *service) ListOwn(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Listing, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Browse(ctx context.Context, limit, offset int) ([]Listing, error) {
	return s.repo.ListAll(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID uuid.UUID, l Listing, rawSkills string) (Listing, error) {
	if err := validate(&l); err != nil {
		return Listing{}, err
	}
	l.Skills = skills.ParseList(rawSkills)
	if err := s.repo.UpdateForOwner(ctx, ownerID, l); err != nil {
		return Listing{}, err
	}
	return s.repo.GetByIDAny(ctx, l.ID)
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

func validate(l *Listing) error {
	l.Title = strings.TrimSpace(l.Title)
	l.Description = strings.TrimSpace(l.Description)
	l.Location = strings.TrimSpace(l.Location)
	l.ContactEmail = strings.TrimSpace(l.ContactEmail)
	if l.Title == "" {
		return ErrValidation("title is required")
	}
	if l.Description == "" {
		return ErrValidation("description is required")
	}
	if l.Location == "" {
		return ErrValidation("location is required")
	}
	if l.ContactEmail == "" {
		return ErrValidation("contact email is required")
	}
	if !category.Valid(l.Category) {
		return ErrValidation("unknown category")
	}
	if l.HourlyRate < 0 {
		return ErrValidation("hourly rate must be non-negative")
	}
	return nil
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
