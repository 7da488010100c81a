package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/model"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresEntitlementRepository stores entitlements in a Postgres database.
type PostgresEntitlementRepository struct {
	db *sql.DB
}

func NewPostgresEntitlementRepository(connStr string) (*PostgresEntitlementRepository, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	r := &PostgresEntitlementRepository{db: db}
	if err := r.init(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *PostgresEntitlementRepository) init() error {
	_, err := r.db.Exec(`
        CREATE TABLE IF NOT EXISTS entitlements (
            user_id BIGINT PRIMARY KEY,
            free_used BOOLEAN NOT NULL,
            paid_remaining INTEGER NOT NULL
        )`)
	return err
}

func (r *PostgresEntitlementRepository) Get(ctx context.Context, userID int64) (*model.Entitlement, error) {
	row := r.db.QueryRowContext(ctx, `SELECT user_id, free_used, paid_remaining FROM entitlements WHERE user_id=$1`, userID)
	var e model.Entitlement
	if err := row.Scan(&e.UserID, &e.FreeUsed, &e.PaidRemaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *PostgresEntitlementRepository) Save(ctx context.Context, e *model.Entitlement) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO entitlements (user_id, free_used, paid_remaining)
        VALUES ($1,$2,$3)
        ON CONFLICT (user_id) DO UPDATE SET
            free_used=EXCLUDED.free_used,
            paid_remaining=EXCLUDED.paid_remaining
    `, e.UserID, e.FreeUsed, e.PaidRemaining)
	return err
}

// Close releases the underlying connection pool.
func (r *PostgresEntitlementRepository) Close() error {
	return r.db.Close()
}
