package memory

import (
	"context"
	"sync"

	"did-payment-splitter/internal/core/domain"
)

// AdminRepository implements ports.AdminRepository in memory.
type AdminRepository struct {
	mu          sync.RWMutex
	owner       domain.Principal
	whitelisted map[domain.Principal]bool
}

// NewAdminRepository creates an admin store with no owner.
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{whitelisted: make(map[domain.Principal]bool)}
}

func (r *AdminRepository) GetOwner(ctx context.Context) (domain.Principal, error) {
	defer readGuard(ctx)()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.owner, nil
}

func (r *AdminRepository) SetOwner(ctx context.Context, owner domain.Principal) error {
	defer writeGuard(ctx)()
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.owner
	r.owner = owner
	record(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.owner = old
	})
	return nil
}

func (r *AdminRepository) IsWhitelisted(ctx context.Context, p domain.Principal) (bool, error) {
	defer readGuard(ctx)()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.whitelisted[p], nil
}

func (r *AdminRepository) SetWhitelisted(ctx context.Context, p domain.Principal, active bool) error {
	defer writeGuard(ctx)()
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.whitelisted[p]
	r.whitelisted[p] = active
	record(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.whitelisted[p] = old
	})
	return nil
}
