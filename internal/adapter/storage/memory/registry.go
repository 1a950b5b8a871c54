package memory

import (
	"context"
	"sync"

	"did-payment-splitter/internal/core/domain"
)

type flagKey struct {
	role domain.Role
	id   domain.DID
}

// RegistryRepository implements ports.RegistryRepository in memory.
type RegistryRepository struct {
	mu    sync.RWMutex
	flags map[flagKey]bool
	links map[domain.DID]domain.DID
}

// NewRegistryRepository creates an empty registry store.
func NewRegistryRepository() *RegistryRepository {
	return &RegistryRepository{
		flags: make(map[flagKey]bool),
		links: make(map[domain.DID]domain.DID),
	}
}

func (r *RegistryRepository) GetFlag(ctx context.Context, role domain.Role, id domain.DID) (bool, error) {
	defer readGuard(ctx)()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.flags[flagKey{role, id}], nil
}

func (r *RegistryRepository) SetFlag(ctx context.Context, role domain.Role, id domain.DID, active bool) error {
	defer writeGuard(ctx)()
	r.mu.Lock()
	defer r.mu.Unlock()

	k := flagKey{role, id}
	old := r.flags[k]
	r.flags[k] = active
	record(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.flags[k] = old
	})
	return nil
}

func (r *RegistryRepository) GetLink(ctx context.Context, child domain.DID) (domain.DID, error) {
	defer readGuard(ctx)()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.links[child], nil
}

// SetLink stores parent for child; domain.NoDID clears the link.
func (r *RegistryRepository) SetLink(ctx context.Context, child, parent domain.DID) error {
	defer writeGuard(ctx)()
	r.mu.Lock()
	defer r.mu.Unlock()

	old, had := r.links[child]
	if parent == domain.NoDID {
		delete(r.links, child)
	} else {
		r.links[child] = parent
	}
	record(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if had {
			r.links[child] = old
		} else {
			delete(r.links, child)
		}
	})
	return nil
}
