package postgres

import (
	"context"
	"errors"
	"fmt"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.IdentityLedger on the identities table.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// CreateIdentity mints keccak256(owner || nonce) with the nonce drawn from
// identity_nonce_seq. referrerHint is ignored.
func (r *LedgerRepo) CreateIdentity(ctx context.Context, _ domain.DID, owner domain.Principal) (domain.DID, error) {
	if owner == domain.NoPrincipal {
		return domain.NoDID, domain.ErrZeroOwner
	}
	q := conn(ctx, r.pool)

	var nonce int64
	if err := q.QueryRow(ctx, "SELECT nextval('identity_nonce_seq')").Scan(&nonce); err != nil {
		return domain.NoDID, fmt.Errorf("next identity nonce: %w", err)
	}

	id := domain.DeriveDID(owner, uint64(nonce))
	_, err := q.Exec(ctx, `INSERT INTO identities (id, controller) VALUES ($1, $2)`,
		id.Bytes(), owner.Bytes())
	if err != nil {
		return domain.NoDID, fmt.Errorf("insert identity: %w", err)
	}
	return id, nil
}

// ResolveController returns the live controller of id.
func (r *LedgerRepo) ResolveController(ctx context.Context, id domain.DID) (domain.Principal, bool, error) {
	var controller []byte
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT controller FROM identities WHERE id = $1`, id.Bytes()).Scan(&controller)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NoPrincipal, false, nil
		}
		return domain.NoPrincipal, false, fmt.Errorf("resolve controller: %w", err)
	}
	p := decodePrincipal(controller)
	return p, p != domain.NoPrincipal, nil
}

// DeleteIdentity clears the controller of id.
func (r *LedgerRepo) DeleteIdentity(ctx context.Context, id domain.DID, caller domain.Principal) error {
	q := conn(ctx, r.pool)
	if err := r.checkController(ctx, q, id, caller); err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `UPDATE identities SET controller = NULL WHERE id = $1`, id.Bytes()); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}

// SetMetadata stores metadata for id.
func (r *LedgerRepo) SetMetadata(ctx context.Context, id domain.DID, caller domain.Principal, metadata common.Hash) error {
	q := conn(ctx, r.pool)
	if err := r.checkController(ctx, q, id, caller); err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `UPDATE identities SET metadata = $2 WHERE id = $1`, id.Bytes(), metadata.Bytes()); err != nil {
		return fmt.Errorf("set metadata: %w", err)
	}
	return nil
}

// Metadata returns the metadata hash of a live identity.
func (r *LedgerRepo) Metadata(ctx context.Context, id domain.DID) (common.Hash, error) {
	var controller, metadata []byte
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT controller, metadata FROM identities WHERE id = $1`, id.Bytes()).Scan(&controller, &metadata)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.Hash{}, domain.ErrIdentityNotFound
		}
		return common.Hash{}, fmt.Errorf("get metadata: %w", err)
	}
	if len(controller) == 0 {
		return common.Hash{}, domain.ErrIdentityNotFound
	}
	return common.BytesToHash(metadata), nil
}

// checkController locks the identity row and verifies caller controls it.
func (r *LedgerRepo) checkController(ctx context.Context, q querier, id domain.DID, caller domain.Principal) error {
	var controller []byte
	err := q.QueryRow(ctx,
		`SELECT controller FROM identities WHERE id = $1 FOR UPDATE`, id.Bytes()).Scan(&controller)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrIdentityNotFound
		}
		return fmt.Errorf("lock identity: %w", err)
	}
	current := decodePrincipal(controller)
	if current == domain.NoPrincipal {
		return domain.ErrIdentityNotFound
	}
	if current != caller {
		return domain.ErrNotController
	}
	return nil
}
