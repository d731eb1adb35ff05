package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtlprog/proposedesk/internal/domain"
)

var accountColumns = []string{"id", "name", "token", "is_active", "created_at"}

// AccountRepository handles database operations for accounts.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetByToken finds an account by authentication token.
func (r *AccountRepository) GetByToken(ctx context.Context, token string) (*domain.Account, error) {
	return r.getOne(ctx, sq.Eq{"token": token})
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.getOne(ctx, sq.Eq{"id": accountID})
}

// Create inserts an active account with a freshly generated token.
func (r *AccountRepository) Create(ctx context.Context, name string) (*domain.Account, error) {
	query, args, err := psql.
		Insert("users").
		Columns("name", "token").
		Values(name, uuid.NewString()).
		Suffix("RETURNING " + joinColumns(accountColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	account, err := scanAccount(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// List returns all accounts ordered by creation time.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From("users").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) getOne(ctx context.Context, where sq.Sqlizer) (*domain.Account, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	account, err := scanAccount(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("query account: %w", err)
	}

	return account, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Token,
		&account.IsActive,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
