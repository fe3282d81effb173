// Package userrole implements the user_roles repository. The catalog only
// reads from it; rows are written by the grant-role command.
package userrole

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// Repo provides user role lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user role repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT username, role, display_name, email, created_at, last_modified
FROM user_roles
WHERE lower(username) = lower($1)`

const listSQL = `
SELECT username, role, display_name, email, created_at, last_modified
FROM user_roles
ORDER BY lower(username)`

const upsertSQL = `
INSERT INTO user_roles (username, role, display_name, email, created_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (username) DO UPDATE SET
    role          = EXCLUDED.role,
    display_name  = COALESCE(EXCLUDED.display_name, user_roles.display_name),
    email         = COALESCE(EXCLUDED.email, user_roles.email),
    last_modified = now()
RETURNING username, role, display_name, email, created_at, last_modified`

// GetByUsername returns the role assignment for username, ignoring case.
// Returns domain.ErrNotFound if the user has no row.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.UserRoleAssignment, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, username)
	a, err := scanAssignment(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_role", username)
	}
	return &a, nil
}

// List returns every role assignment ordered by username.
func (r *Repo) List(ctx context.Context) ([]domain.UserRoleAssignment, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "user_role", "list")
	}
	defer rows.Close()

	result := []domain.UserRoleAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user_role", "list")
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user_role", "list")
	}
	return result, nil
}

// Upsert creates or replaces the role for a user. Nil display name or email
// keep the stored values.
func (r *Repo) Upsert(ctx context.Context, a domain.UserRoleAssignment) (*domain.UserRoleAssignment, error) {
	username := strings.TrimSpace(a.Username)
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSQL,
		username, a.Role.String(), a.DisplayName, a.Email,
	)
	out, err := scanAssignment(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_role", username)
	}
	return &out, nil
}

func scanAssignment(row pgx.Row) (domain.UserRoleAssignment, error) {
	var (
		a            domain.UserRoleAssignment
		role         string
		createdAt    time.Time
		lastModified *time.Time
	)
	if err := row.Scan(&a.Username, &role, &a.DisplayName, &a.Email, &createdAt, &lastModified); err != nil {
		return domain.UserRoleAssignment{}, err
	}
	a.Role = domain.ParseRole(role)
	a.CreatedAt = createdAt.UTC()
	if lastModified != nil {
		t := lastModified.UTC()
		a.LastModified = &t
	}
	return a, nil
}
