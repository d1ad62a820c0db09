package tx

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
)

// SQLRunner executes work inside a single database/sql transaction. The
// transaction is carried in the context so stores pick it up transparently;
// everything run through RunInTx becomes durable with one commit.
type SQLRunner struct {
	db *sql.DB

	savepointSeq atomic.Uint64
}

func NewSQLRunner(db *sql.DB) *SQLRunner {
	return &SQLRunner{db: db}
}

// RunInTx begins a transaction, runs fn with the transaction in context, and
// commits when fn succeeds. Any error from fn rolls the whole batch back.
func (r *SQLRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = stx.Rollback()
	}()

	if err := fn(WithTx(ctx, stx)); err != nil {
		return err
	}

	if err := stx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Isolated runs fn inside a savepoint on the surrounding transaction. If fn
// fails, its own writes are rolled back to the savepoint and the enclosing
// transaction stays usable; without this a failed statement would poison the
// whole batch on Postgres. Outside a transaction fn runs as-is.
func (r *SQLRunner) Isolated(ctx context.Context, fn func(ctx context.Context) error) error {
	stx, ok := From(ctx)
	if !ok {
		return fn(ctx)
	}

	name := fmt.Sprintf("sp_%d", r.savepointSeq.Add(1))
	if _, err := stx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}

	if err := fn(ctx); err != nil {
		if _, rbErr := stx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			return fmt.Errorf("rollback to savepoint after %w: %v", err, rbErr)
		}
		return err
	}

	if _, err := stx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

// Passthrough satisfies the same contract for stores with no transactional
// backend (in-memory). RunInTx and Isolated just invoke fn.
type Passthrough struct{}

func (Passthrough) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (Passthrough) Isolated(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
