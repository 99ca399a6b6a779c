package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type tags the event that produced a notification.
type Type string

const (
	TypeJobApplication    Type = "job_application"
	TypeApplicationStatus Type = "application_status"
)

// Payload carries the related record ids for click-through navigation.
type Payload struct {
	JobID         uuid.UUID `json:"jobId"`
	ApplicationID uuid.UUID `json:"applicationId"`
}

// Notification is a system-generated inbox message. Rows are never deleted;
// the only mutation is flipping the read flag to true.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Data      Payload   `json:"data"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrNotFound = errors.New("notification not found")

// Repository abstracts persistence of notifications.
type Repository interface {
	Create(ctx context.Context, n Notification) error
	ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]Notification, error)
	// MarkRead is idempotent: marking an already-read row succeeds.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
