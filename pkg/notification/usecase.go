package notification

import (
	"context"

	"github.com/google/uuid"
)

const defaultLimit = 10

// UseCase is the per-account inbox.
type UseCase interface {
	Recent(ctx context.Context, accountID uuid.UUID, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Recent(ctx context.Context, accountID uuid.UUID, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.repo.ListRecent(ctx, accountID, limit)
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}
