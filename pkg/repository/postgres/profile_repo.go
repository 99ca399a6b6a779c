package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/localtalent/pkg/profile"
)

// ProfileRepository stores the single per-account profile row. The role
// column is written once on insert and never by Update.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS user_profiles (
	id UUID PRIMARY KEY,
	account_id UUID NOT NULL UNIQUE,
	role TEXT NOT NULL CHECK (role IN ('business', 'freelancer')),
	full_name TEXT NOT NULL DEFAULT '',
	company_name TEXT NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	location TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO user_profiles (id, account_id, role, full_name, company_name, bio, skills, location, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, p.ID, p.AccountID, string(p.Role), p.FullName, p.CompanyName, p.Bio, p.Skills, p.Location, p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return profile.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProfileRepository) GetByAccount(ctx context.Context, accountID uuid.UUID) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, account_id, role, full_name, company_name, bio, skills, location, created_at
FROM user_profiles WHERE account_id = $1
`, accountID)
	return scanProfile(row)
}

func (r *ProfileRepository) Update(ctx context.Context, accountID uuid.UUID, upd profile.Update) (profile.Profile, error) {
	if upd.Skills == nil {
		upd.Skills = []string{}
	}
	row := r.pool.QueryRow(ctx, `
UPDATE user_profiles
SET full_name = $2, company_name = $3, bio = $4, skills = $5, location = $6
WHERE account_id = $1
RETURNING id, account_id, role, full_name, company_name, bio, skills, location, created_at
`, accountID, upd.FullName, upd.CompanyName, upd.Bio, upd.Skills, upd.Location)
	return scanProfile(row)
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	var role string
	var created time.Time
	if err := row.Scan(&p.ID, &p.AccountID, &role, &p.FullName, &p.CompanyName, &p.Bio, &p.Skills, &p.Location, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.Role = profile.Role(role)
	p.CreatedAt = created.UTC()
	return p, nil
}
