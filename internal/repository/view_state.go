package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtlprog/proposedesk/internal/listquery"
)

// ViewStateRepository persists list-query states as JSON blobs keyed by
// (user, view). It implements listquery.Store.
type ViewStateRepository struct {
	pool *pgxpool.Pool
}

var (
	_ listquery.Store   = (*ViewStateRepository)(nil)
	_ listquery.Deleter = (*ViewStateRepository)(nil)
)

// NewViewStateRepository creates a new ViewStateRepository.
func NewViewStateRepository(pool *pgxpool.Pool) *ViewStateRepository {
	return &ViewStateRepository{pool: pool}
}

// Load returns the stored blob, or listquery.ErrNotFound.
func (r *ViewStateRepository) Load(ctx context.Context, key listquery.Key) ([]byte, error) {
	query, args, err := psql.
		Select("state").
		From("view_states").
		Where(sq.Eq{"user_id": key.Owner, "view": key.View}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var data []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, listquery.ErrNotFound
		}
		return nil, fmt.Errorf("query view state %s: %w", key, err)
	}

	return data, nil
}

// Save upserts the blob for key. The last write wins.
func (r *ViewStateRepository) Save(ctx context.Context, key listquery.Key, data []byte) error {
	query, args, err := psql.
		Insert("view_states").
		Columns("user_id", "view", "state", "updated_at").
		Values(key.Owner, key.View, string(data), sq.Expr("NOW()")).
		Suffix("ON CONFLICT (user_id, view) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save view state %s: %w", key, err)
	}

	return nil
}

// Delete removes the stored state for key; missing rows are not an error.
func (r *ViewStateRepository) Delete(ctx context.Context, key listquery.Key) error {
	query, args, err := psql.
		Delete("view_states").
		Where(sq.Eq{"user_id": key.Owner, "view": key.View}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete view state %s: %w", key, err)
	}

	return nil
}

// PurgeOlderThan deletes states not updated since before and returns how many were removed.
func (r *ViewStateRepository) PurgeOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psql.
		Delete("view_states").
		Where(sq.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge view states: %w", err)
	}

	return tag.RowsAffected(), nil
}
