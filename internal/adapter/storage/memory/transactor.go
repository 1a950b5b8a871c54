// Package memory holds process-local implementations of the storage ports.
// Writes made inside Transactor.WithinTx are journaled and undone on error.
package memory

import (
	"context"
	"sync"
)

// txMu orders transactions against store calls made outside one. A
// transaction holds the write side until it commits or rolls back, so
// plain reads never observe its intermediate state.
var txMu sync.RWMutex

type journalKey struct{}

type journal struct {
	undo []func()
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(journalKey{}).(*journal)
	return ok
}

// record registers an undo step with the transaction in ctx, if any.
func record(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(journalKey{}).(*journal); ok {
		j.undo = append(j.undo, undo)
	}
}

// readGuard takes the read side of txMu unless ctx already runs inside a
// transaction. The returned func releases it.
func readGuard(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	txMu.RLock()
	return txMu.RUnlock
}

// writeGuard is readGuard for single writes made outside a transaction.
func writeGuard(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	txMu.Lock()
	return txMu.Unlock
}

// Transactor implements ports.Transactor. All memory stores share one
// lock, so transactions run one at a time.
type Transactor struct{}

// NewTransactor creates a new in-memory Transactor.
func NewTransactor() *Transactor {
	return &Transactor{}
}

// WithinTx runs fn under the write side of the shared lock. A nested call
// joins the outer transaction. If fn panics the journal is replayed before
// the panic continues.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	txMu.Lock()
	defer txMu.Unlock()

	j := &journal{}
	defer func() {
		if r := recover(); r != nil {
			j.rollback()
			panic(r)
		}
	}()

	if err = fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		j.rollback()
		return err
	}
	return nil
}
