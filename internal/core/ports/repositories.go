package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"did-payment-splitter/internal/core/domain"
)

// AdminRepository persists the owner and the whitelisted set.
type AdminRepository interface {
	// GetOwner returns domain.NoPrincipal when no owner is stored.
	GetOwner(ctx context.Context) (domain.Principal, error)
	SetOwner(ctx context.Context, owner domain.Principal) error
	IsWhitelisted(ctx context.Context, p domain.Principal) (bool, error)
	SetWhitelisted(ctx context.Context, p domain.Principal, active bool) error
}

// RegistryRepository persists vendor/affiliate flags and affiliate links.
type RegistryRepository interface {
	GetFlag(ctx context.Context, role domain.Role, id domain.DID) (bool, error)
	SetFlag(ctx context.Context, role domain.Role, id domain.DID, active bool) error
	// GetLink returns domain.NoDID when child has no parent.
	GetLink(ctx context.Context, child domain.DID) (domain.DID, error)
	SetLink(ctx context.Context, child, parent domain.DID) error
}

// Transactor runs fn atomically. Stores called with the ctx passed to fn
// join the transaction; a nested WithinTx joins the outer one.
// Any error returned by fn rolls everything back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventSink stores or forwards published events.
type EventSink interface {
	Append(ctx context.Context, events []*domain.Event) error
	Name() string
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, principal string, nonce string, ttl time.Duration) (bool, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}
