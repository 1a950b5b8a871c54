package postgres

import (
	"context"
	"errors"
	"fmt"

	"did-payment-splitter/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AdminRepo implements ports.AdminRepository.
type AdminRepo struct {
	pool Pool
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(pool Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

func (r *AdminRepo) GetOwner(ctx context.Context) (domain.Principal, error) {
	var owner []byte
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT owner FROM admin_owner WHERE id`).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NoPrincipal, nil
		}
		return domain.NoPrincipal, fmt.Errorf("get owner: %w", err)
	}
	return decodePrincipal(owner), nil
}

func (r *AdminRepo) SetOwner(ctx context.Context, owner domain.Principal) error {
	query := `INSERT INTO admin_owner (id, owner) VALUES (TRUE, $1)
		ON CONFLICT (id) DO UPDATE SET owner = EXCLUDED.owner`

	if _, err := conn(ctx, r.pool).Exec(ctx, query, owner.Bytes()); err != nil {
		return fmt.Errorf("set owner: %w", err)
	}
	return nil
}

func (r *AdminRepo) IsWhitelisted(ctx context.Context, p domain.Principal) (bool, error) {
	var active bool
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT active FROM whitelist WHERE principal = $1`, p.Bytes()).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check whitelist: %w", err)
	}
	return active, nil
}

func (r *AdminRepo) SetWhitelisted(ctx context.Context, p domain.Principal, active bool) error {
	query := `INSERT INTO whitelist (principal, active, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (principal) DO UPDATE SET active = EXCLUDED.active, updated_at = now()`

	if _, err := conn(ctx, r.pool).Exec(ctx, query, p.Bytes(), active); err != nil {
		return fmt.Errorf("set whitelist: %w", err)
	}
	return nil
}
