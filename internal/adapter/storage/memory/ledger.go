package memory

import (
	"context"
	"sync"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

type identity struct {
	controller domain.Principal
	metadata   common.Hash
}

// Ledger implements ports.IdentityLedger in memory. Deleted identities keep
// their record with a zero controller so their DID is never minted again.
type Ledger struct {
	mu         sync.RWMutex
	nonce      uint64
	identities map[domain.DID]identity
}

// NewLedger creates an empty in-memory identity ledger.
func NewLedger() *Ledger {
	return &Ledger{identities: make(map[domain.DID]identity)}
}

// CreateIdentity mints keccak256(owner || nonce). referrerHint is ignored.
func (l *Ledger) CreateIdentity(ctx context.Context, _ domain.DID, owner domain.Principal) (domain.DID, error) {
	if owner == domain.NoPrincipal {
		return domain.NoDID, domain.ErrZeroOwner
	}

	defer writeGuard(ctx)()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nonce++
	id := domain.DeriveDID(owner, l.nonce)
	l.identities[id] = identity{controller: owner}

	record(ctx, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.identities, id)
		l.nonce--
	})
	return id, nil
}

// ResolveController returns the live controller of id.
func (l *Ledger) ResolveController(ctx context.Context, id domain.DID) (domain.Principal, bool, error) {
	defer readGuard(ctx)()
	l.mu.RLock()
	defer l.mu.RUnlock()

	ident, ok := l.identities[id]
	if !ok || ident.controller == domain.NoPrincipal {
		return domain.NoPrincipal, false, nil
	}
	return ident.controller, true, nil
}

// DeleteIdentity clears the controller of id.
func (l *Ledger) DeleteIdentity(ctx context.Context, id domain.DID, caller domain.Principal) error {
	return l.update(ctx, id, caller, func(ident *identity) {
		ident.controller = domain.NoPrincipal
	})
}

// SetMetadata stores metadata for id.
func (l *Ledger) SetMetadata(ctx context.Context, id domain.DID, caller domain.Principal, metadata common.Hash) error {
	return l.update(ctx, id, caller, func(ident *identity) {
		ident.metadata = metadata
	})
}

// Metadata returns the metadata hash of id.
func (l *Ledger) Metadata(ctx context.Context, id domain.DID) (common.Hash, error) {
	defer readGuard(ctx)()
	l.mu.RLock()
	defer l.mu.RUnlock()

	ident, ok := l.identities[id]
	if !ok || ident.controller == domain.NoPrincipal {
		return common.Hash{}, domain.ErrIdentityNotFound
	}
	return ident.metadata, nil
}

func (l *Ledger) update(ctx context.Context, id domain.DID, caller domain.Principal, mutate func(*identity)) error {
	defer writeGuard(ctx)()
	l.mu.Lock()
	defer l.mu.Unlock()

	old, ok := l.identities[id]
	if !ok || old.controller == domain.NoPrincipal {
		return domain.ErrIdentityNotFound
	}
	if old.controller != caller {
		return domain.ErrNotController
	}

	next := old
	mutate(&next)
	l.identities[id] = next

	record(ctx, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.identities[id] = old
	})
	return nil
}
