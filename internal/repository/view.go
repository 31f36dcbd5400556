package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtlprog/tailtales/internal/domain"
)

var viewColumns = []string{"id", "menu_open", "email", "submitted", "created_at", "updated_at"}

// ViewRepository handles database operations for page views.
type ViewRepository struct {
	pool *pgxpool.Pool
}

// NewViewRepository creates a new ViewRepository.
func NewViewRepository(pool *pgxpool.Pool) *ViewRepository {
	return &ViewRepository{pool: pool}
}

// Create inserts a new view.
func (r *ViewRepository) Create(ctx context.Context, v *domain.View) error {
	query, args, err := psql.
		Insert("views").
		Columns(viewColumns...).
		Values(v.ID, v.Header.MenuOpen, v.Hero.Email, v.Hero.Submitted, v.CreatedAt, v.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert view: %w", err)
	}

	return nil
}

// Get retrieves a view by ID.
func (r *ViewRepository) Get(ctx context.Context, id string) (*domain.View, error) {
	query, args, err := psql.
		Select(viewColumns...).
		From("views").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for view %s: %w", id, err)
	}

	return scanView(r.pool.QueryRow(ctx, query, args...))
}

// Update locks the row, applies fn and writes the result back in one transaction.
func (r *ViewRepository) Update(ctx context.Context, id string, now time.Time, fn UpdateFunc) (*domain.View, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	query, args, err := psql.
		Select(viewColumns...).
		From("views").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build locking query for view %s: %w", id, err)
	}

	v, err := scanView(tx.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := fn(v); err != nil {
		return nil, err
	}
	v.UpdatedAt = now

	query, args, err = psql.
		Update("views").
		Set("menu_open", v.Header.MenuOpen).
		Set("email", v.Hero.Email).
		Set("submitted", v.Hero.Submitted).
		Set("updated_at", v.UpdatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update view: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return v, nil
}

// DeleteIdleBefore removes views whose last update is older than t.
func (r *ViewRepository) DeleteIdleBefore(ctx context.Context, t time.Time) (int64, error) {
	query, args, err := psql.
		Delete("views").
		Where(sq.Lt{"updated_at": t}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete idle views: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanView(row pgx.Row) (*domain.View, error) {
	var v domain.View
	err := row.Scan(
		&v.ID,
		&v.Header.MenuOpen,
		&v.Hero.Email,
		&v.Hero.Submitted,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrViewNotFound
		}
		return nil, fmt.Errorf("query view: %w", err)
	}
	return &v, nil
}
