package notification

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// Sender performs the advisory half of a two-step write: the caller's
// primary write must already be durable before Send is called. Delivery
// failures are logged and swallowed, never surfaced, never retried.
type Sender struct {
	repo Repository
}

func NewSender(repo Repository) *Sender { return &Sender{repo: repo} }

func (s *Sender) Send(ctx context.Context, n Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification: dropping %s for %s: %v", n.Type, n.AccountID, err)
	}
}
