package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// advisoryLockKey serializes every splitter transaction across all
// instances sharing the database.
const advisoryLockKey int64 = 0x5350_4c49_5454_4552

// Transactor implements ports.Transactor on a pgx pool.
type Transactor struct {
	pool Pool
	log  zerolog.Logger
}

// NewTransactor creates a new Transactor wrapping the connection pool.
func NewTransactor(pool Pool, log zerolog.Logger) *Transactor {
	return &Transactor{pool: pool, log: log}
}

// WithinTx begins a transaction, takes the global advisory lock and runs fn.
// The transaction is committed if fn succeeds and rolled back otherwise.
// A nested call joins the transaction already in ctx.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", advisoryLockKey); err != nil {
		t.rollback(ctx, tx)
		return fmt.Errorf("acquire advisory lock: %w", err)
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		t.rollback(ctx, tx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (t *Transactor) rollback(ctx context.Context, tx interface {
	Rollback(ctx context.Context) error
}) {
	if err := tx.Rollback(ctx); err != nil {
		t.log.Warn().Err(err).Msg("rollback failed")
	}
}
