package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/localtalent/pkg/listing"
)

// ListingRepository stores job listings owned by business accounts.
type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) (*ListingRepository, error) {
	r := &ListingRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ListingRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_listings (
	id UUID PRIMARY KEY,
	business_id UUID NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL,
	budget DOUBLE PRECISION NOT NULL CHECK (budget >= 0),
	location TEXT NOT NULL,
	skills_required TEXT[] NOT NULL DEFAULT '{}',
	status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed')),
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_job_listings_business ON job_listings(business_id);
CREATE INDEX IF NOT EXISTS idx_job_listings_status ON job_listings(status, created_at DESC);
`)
	return err
}

func (r *ListingRepository) Create(ctx context.Context, l listing.Listing) error {
	if l.SkillsRequired == nil {
		l.SkillsRequired = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO job_listings (id, business_id, title, description, category, budget, location, skills_required, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, l.ID, l.BusinessID, l.Title, l.Description, l.Category, l.Budget, l.Location, l.SkillsRequired, string(l.Status), l.CreatedAt)
	return err
}

func (r *ListingRepository) GetByIDAny(ctx context.Context, id uuid.UUID) (listing.Listing, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, business_id, title, description, category, budget, location, skills_required, status, created_at
FROM job_listings WHERE id = $1
`, id)
	return scanListing(row)
}

func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]listing.Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, business_id, title, description, category, budget, location, skills_required, status, created_at
FROM job_listings
WHERE business_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectListings(rows)
}

func (r *ListingRepository) ListOpen(ctx context.Context, limit, offset int) ([]listing.Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, business_id, title, description, category, budget, location, skills_required, status, created_at
FROM job_listings
WHERE status = 'open'
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectListings(rows)
}

func (r *ListingRepository) UpdateForOwner(ctx context.Context, ownerID uuid.UUID, l listing.Listing) error {
	if l.SkillsRequired == nil {
		l.SkillsRequired = []string{}
	}
	cmd, err := r.pool.Exec(ctx, `
UPDATE job_listings
SET title = $3, description = $4, category = $5, budget = $6, location = $7, skills_required = $8, status = $9
WHERE id = $1 AND business_id = $2
`, l.ID, ownerID, l.Title, l.Description, l.Category, l.Budget, l.Location, l.SkillsRequired, string(l.Status))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return listing.ErrNotFound
	}
	return nil
}

func (r *ListingRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_listings WHERE id = $1 AND business_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return listing.ErrNotFound
	}
	return nil
}

func scanListing(row pgx.Row) (listing.Listing, error) {
	var l listing.Listing
	var status string
	var created time.Time
	if err := row.Scan(&l.ID, &l.BusinessID, &l.Title, &l.Description, &l.Category, &l.Budget, &l.Location, &l.SkillsRequired, &status, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return listing.Listing{}, listing.ErrNotFound
		}
		return listing.Listing{}, err
	}
	l.Status = listing.Status(status)
	l.CreatedAt = created.UTC()
	return l, nil
}

func collectListings(rows pgx.Rows) ([]listing.Listing, error) {
	defer rows.Close()
	var res []listing.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}
