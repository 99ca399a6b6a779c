package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/localtalent/pkg/notification"
)

// NotificationRepository stores the per-account inbox. Rows are append-only
// except for the read flag.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) (*NotificationRepository, error) {
	r := &NotificationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *NotificationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS notifications (
	id UUID PRIMARY KEY,
	account_id UUID NOT NULL,
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	data JSONB NOT NULL DEFAULT '{}',
	read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notifications_account ON notifications(account_id, created_at DESC);
`)
	return err
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO notifications (id, account_id, type, title, message, data, read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, n.ID, n.AccountID, string(n.Type), n.Title, n.Message, data, n.Read, n.CreatedAt)
	return err
}

func (r *NotificationRepository) ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]notification.Notification, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, account_id, type, title, message, data, read, created_at
FROM notifications
WHERE account_id = $1
ORDER BY created_at DESC
LIMIT $2
`, accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var typ string
		var data []byte
		var created time.Time
		if err := rows.Scan(&n.ID, &n.AccountID, &typ, &n.Title, &n.Message, &data, &n.Read, &created); err != nil {
			return nil, err
		}
		n.Type = notification.Type(typ)
		n.CreatedAt = created.UTC()
		_ = json.Unmarshal(data, &n.Data)
		res = append(res, n)
	}
	return res, rows.Err()
}

// MarkRead is idempotent: repeating it on an already-read row matches the
// row again and succeeds.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}
