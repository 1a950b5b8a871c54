package postgres

import (
	"errors"
	"fmt"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the repositories react to.
const (
	pgCheckViolation = "23514"
)

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}

// decodeAmount parses a NUMERIC read back as ::text.
func decodeAmount(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("decode amount %q: %w", s, err)
	}
	return v, nil
}

func decodePrincipal(b []byte) domain.Principal {
	if len(b) == 0 {
		return domain.NoPrincipal
	}
	return common.BytesToAddress(b)
}

func decodeDID(b []byte) domain.DID {
	if len(b) == 0 {
		return domain.NoDID
	}
	return common.BytesToHash(b)
}
