package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresRepo persists auth events through database/sql (pgx stdlib driver).
//
// Expected schema:
//
//	CREATE TABLE auth_events (
//	    id            TEXT PRIMARY KEY,
//	    type          TEXT NOT NULL,
//	    user_id       TEXT NOT NULL DEFAULT '',
//	    role          TEXT NOT NULL DEFAULT '',
//	    path          TEXT NOT NULL DEFAULT '',
//	    required_role TEXT NOT NULL DEFAULT '',
//	    redirected_to TEXT NOT NULL DEFAULT '',
//	    reason        TEXT NOT NULL DEFAULT '',
//	    created_at    TIMESTAMPTZ NOT NULL
//	);

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) (*PostgresRepo, error) {
	if db == nil {
		return nil, errors.New("audit: db is required")
	}
	return &PostgresRepo{db: db}, nil
}

func (r *PostgresRepo) Append(ctx context.Context, e Event) error {
	const q = `
		INSERT INTO auth_events
			(id, type, user_id, role, path, required_role, redirected_to, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, q,
		e.ID, string(e.Type), e.UserID, e.Role, e.Path, e.RequiredRole, e.RedirectedTo, e.Reason, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("audit: append failed: %w", err)
	}
	return nil
}
