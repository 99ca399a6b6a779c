package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/localtalent/pkg/talent"
)

// TalentRepository stores freelancer self-listings.
type TalentRepository struct {
	pool *pgxpool.Pool
}

func NewTalentRepository(pool *pgxpool.Pool) (*TalentRepository, error) {
	r := &TalentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TalentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS talent_listings (
	id UUID PRIMARY KEY,
	freelancer_id UUID NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL,
	hourly_rate DOUBLE PRECISION NOT NULL CHECK (hourly_rate >= 0),
	location TEXT NOT NULL,
	skills TEXT[] NOT NULL DEFAULT '{}',
	contact_email TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_talent_listings_owner ON talent_listings(freelancer_id);
`)
	return err
}

func (r *TalentRepository) Create(ctx context.Context, l talent.Listing) error {
	if l.Skills == nil {
		l.Skills = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO talent_listings (id, freelancer_id, title, description, category, hourly_rate, location, skills, contact_email, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, l.ID, l.FreelancerID, l.Title, l.Description, l.Category, l.HourlyRate, l.Location, l.Skills, l.ContactEmail, l.CreatedAt)
	return err
}

func (r *TalentRepository) GetByIDAny(ctx context.Context, id uuid.UUID) (talent.Listing, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, freelancer_id, title, description, category, hourly_rate, location, skills, contact_email, created_at
FROM talent_listings WHERE id = $1
`, id)
	return scanTalent(row)
}

func (r *TalentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]talent.Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, freelancer_id, title, description, category, hourly_rate, location, skills, contact_email, created_at
FROM talent_listings
WHERE freelancer_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectTalent(rows)
}

func (r *TalentRepository) ListAll(ctx context.Context, limit, offset int) ([]talent.Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, freelancer_id, title, description, category, hourly_rate, location, skills, contact_email, created_at
FROM talent_listings
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectTalent(rows)
}

func (r *TalentRepository) UpdateForOwner(ctx context.Context, ownerID uuid.UUID, l talent.Listing) error {
	if l.Skills == nil {
		l.Skills = []string{}
	}
	cmd, err := r.pool.Exec(ctx, `
UPDATE talent_listings
SET title = $3, description = $4, category = $5, hourly_rate = $6, location = $7, skills = $8, contact_email = $9
WHERE id = $1 AND freelancer_id = $2
`, l.ID, ownerID, l.Title, l.Description, l.Category, l.HourlyRate, l.Location, l.Skills, l.ContactEmail)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return talent.ErrNotFound
	}
	return nil
}

func (r *TalentRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM talent_listings WHERE id = $1 AND freelancer_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return talent.ErrNotFound
	}
	return nil
}

func scanTalent(row pgx.Row) (talent.Listing, error) {
	var l talent.Listing
	var created time.Time
	if err := row.Scan(&l.ID, &l.FreelancerID, &l.Title, &l.Description, &l.Category, &l.HourlyRate, &l.Location, &l.Skills, &l.ContactEmail, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return talent.Listing{}, talent.ErrNotFound
		}
		return talent.Listing{}, err
	}
	l.CreatedAt = created.UTC()
	return l, nil
}

func collectTalent(rows pgx.Rows) ([]talent.Listing, error) {
	defer rows.Close()
	var res []talent.Listing
	for rows.Next() {
		l, err := scanTalent(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}
