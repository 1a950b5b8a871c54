package postgres

import (
	"context"
	"errors"
	"fmt"

	"did-payment-splitter/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RegistryRepo implements ports.RegistryRepository.
type RegistryRepo struct {
	pool Pool
}

// NewRegistryRepo creates a new RegistryRepo.
func NewRegistryRepo(pool Pool) *RegistryRepo {
	return &RegistryRepo{pool: pool}
}

func (r *RegistryRepo) GetFlag(ctx context.Context, role domain.Role, id domain.DID) (bool, error) {
	var active bool
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT active FROM registry_flags WHERE role = $1 AND did = $2`,
		string(role), id.Bytes()).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get %s flag: %w", role, err)
	}
	return active, nil
}

func (r *RegistryRepo) SetFlag(ctx context.Context, role domain.Role, id domain.DID, active bool) error {
	query := `INSERT INTO registry_flags (role, did, active, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (role, did) DO UPDATE SET active = EXCLUDED.active, updated_at = now()`

	if _, err := conn(ctx, r.pool).Exec(ctx, query, string(role), id.Bytes(), active); err != nil {
		return fmt.Errorf("set %s flag: %w", role, err)
	}
	return nil
}

func (r *RegistryRepo) GetLink(ctx context.Context, child domain.DID) (domain.DID, error) {
	var parent []byte
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT parent FROM affiliate_links WHERE child = $1`, child.Bytes()).Scan(&parent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NoDID, nil
		}
		return domain.NoDID, fmt.Errorf("get link: %w", err)
	}
	return decodeDID(parent), nil
}

// SetLink stores parent for child; domain.NoDID deletes the row.
func (r *RegistryRepo) SetLink(ctx context.Context, child, parent domain.DID) error {
	q := conn(ctx, r.pool)

	if parent == domain.NoDID {
		if _, err := q.Exec(ctx, `DELETE FROM affiliate_links WHERE child = $1`, child.Bytes()); err != nil {
			return fmt.Errorf("clear link: %w", err)
		}
		return nil
	}

	query := `INSERT INTO affiliate_links (child, parent, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (child) DO UPDATE SET parent = EXCLUDED.parent, updated_at = now()`

	if _, err := q.Exec(ctx, query, child.Bytes(), parent.Bytes()); err != nil {
		return fmt.Errorf("set link: %w", err)
	}
	return nil
}
