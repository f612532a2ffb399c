package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"legaladvisor-backend/models"
)

// QueryRepository handles database operations for the query history
type QueryRepository struct {
	db *sql.DB
}

// NewQueryRepository creates a new query repository
func NewQueryRepository(db *sql.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

// querySchema creates the query history table
const querySchema = `
CREATE TABLE IF NOT EXISTS query_history (
    id BIGSERIAL PRIMARY KEY,
    username TEXT NOT NULL,
    query TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_query_history_username ON query_history (username, id)`

// CreateSchema creates the query_history table if it does not exist
func (r *QueryRepository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, querySchema); err != nil {
		return fmt.Errorf("failed to create query_history table: %w", err)
	}
	return nil
}

// Record stores one analysed query
func (r *QueryRepository) Record(ctx context.Context, username, query string) error {
	if r.db == nil {
		return errors.New("database not set")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO query_history (username, query) VALUES ($1, $2)`,
		username, query,
	)
	if err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}
	return nil
}

// ListByUsername retrieves a user's queries, oldest first. A limit of 0 returns all.
func (r *QueryRepository) ListByUsername(ctx context.Context, username string, limit int) ([]*models.QueryRecord, error) {
	query := `
		SELECT id, username, query, created_at
		FROM query_history
		WHERE username = $1
		ORDER BY id ASC`

	args := []interface{}{username}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	records := make([]*models.QueryRecord, 0)
	for rows.Next() {
		record := &models.QueryRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Username,
			&record.Query,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating query history: %w", err)
	}

	return records, nil
}
