package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/localtalent/pkg/application"
)

// ApplicationRepository stores job applications. The display-name joins use
// LEFT JOIN with a COALESCE placeholder so one missing applicant profile
// never fails a whole list.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) (*ApplicationRepository, error) {
	r := &ApplicationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_applications (
	id UUID PRIMARY KEY,
	job_id UUID NOT NULL REFERENCES job_listings(id) ON DELETE CASCADE,
	freelancer_id UUID NOT NULL,
	cover_letter TEXT NOT NULL,
	proposed_rate DOUBLE PRECISION NOT NULL CHECK (proposed_rate >= 0),
	status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_job_applications_job ON job_applications(job_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_job_applications_freelancer ON job_applications(freelancer_id, created_at DESC);
`)
	return err
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO job_applications (id, job_id, freelancer_id, cover_letter, proposed_rate, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, a.ID, a.JobID, a.FreelancerID, a.CoverLetter, a.ProposedRate, string(a.Status), a.CreatedAt)
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, job_id, freelancer_id, cover_letter, proposed_rate, status, created_at
FROM job_applications WHERE id = $1
`, id)
	var a application.Application
	var status string
	var created time.Time
	if err := row.Scan(&a.ID, &a.JobID, &a.FreelancerID, &a.CoverLetter, &a.ProposedRate, &status, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	a.CreatedAt = created.UTC()
	return a, nil
}

func (r *ApplicationRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]application.WithApplicant, error) {
	rows, err := r.pool.Query(ctx, `
SELECT a.id, a.job_id, a.freelancer_id, a.cover_letter, a.proposed_rate, a.status, a.created_at,
	COALESCE(NULLIF(p.full_name, ''), 'Unknown User') AS applicant_name
FROM job_applications a
LEFT JOIN user_profiles p ON p.account_id = a.freelancer_id
WHERE a.job_id = $1
ORDER BY a.created_at DESC
`, listingID)
	if err != nil {
		return nil, err
	}
	return collectWithApplicant(rows)
}

func (r *ApplicationRepository) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]application.WithListing, error) {
	rows, err := r.pool.Query(ctx, `
SELECT a.id, a.job_id, a.freelancer_id, a.cover_letter, a.proposed_rate, a.status, a.created_at,
	l.title, COALESCE(bp.company_name, '') AS company_name
FROM job_applications a
JOIN job_listings l ON l.id = a.job_id
LEFT JOIN user_profiles bp ON bp.account_id = l.business_id
WHERE a.freelancer_id = $1
ORDER BY a.created_at DESC
`, freelancerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []application.WithListing
	for rows.Next() {
		var w application.WithListing
		var status string
		var created time.Time
		if err := rows.Scan(&w.ID, &w.JobID, &w.FreelancerID, &w.CoverLetter, &w.ProposedRate, &status, &created, &w.ListingTitle, &w.CompanyName); err != nil {
			return nil, err
		}
		w.Status = application.Status(status)
		w.CreatedAt = created.UTC()
		res = append(res, w)
	}
	return res, rows.Err()
}

func (r *ApplicationRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]application.WithApplicant, error) {
	rows, err := r.pool.Query(ctx, `
SELECT a.id, a.job_id, a.freelancer_id, a.cover_letter, a.proposed_rate, a.status, a.created_at,
	COALESCE(NULLIF(p.full_name, ''), 'Unknown User') AS applicant_name
FROM job_applications a
JOIN job_listings l ON l.id = a.job_id
LEFT JOIN user_profiles p ON p.account_id = a.freelancer_id
WHERE l.business_id = $1
ORDER BY a.created_at DESC
`, businessID)
	if err != nil {
		return nil, err
	}
	return collectWithApplicant(rows)
}

func (r *ApplicationRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status application.Status) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE job_applications SET status = $2 WHERE id = $1 AND status = 'pending'
`, id, string(status))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return application.ErrNotPending
	}
	return nil
}

func collectWithApplicant(rows pgx.Rows) ([]application.WithApplicant, error) {
	defer rows.Close()
	var res []application.WithApplicant
	for rows.Next() {
		var w application.WithApplicant
		var status string
		var created time.Time
		if err := rows.Scan(&w.ID, &w.JobID, &w.FreelancerID, &w.CoverLetter, &w.ProposedRate, &status, &created, &w.ApplicantName); err != nil {
			return nil, err
		}
		w.Status = application.Status(status)
		w.CreatedAt = created.UTC()
		res = append(res, w)
	}
	return res, rows.Err()
}
