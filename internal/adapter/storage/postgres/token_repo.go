package postgres

import (
	"context"
	"errors"
	"fmt"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// TokenRepo implements ports.ValueToken on token_balances and
// token_allowances. Amounts travel as decimal text cast to NUMERIC.
type TokenRepo struct {
	pool Pool
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(pool Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

func (r *TokenRepo) BalanceOf(ctx context.Context, token common.Address, owner domain.Principal) (*uint256.Int, error) {
	return r.readAmount(ctx,
		`SELECT amount::text FROM token_balances WHERE token = $1 AND owner = $2`,
		token.Bytes(), owner.Bytes())
}

func (r *TokenRepo) Allowance(ctx context.Context, token common.Address, owner, spender domain.Principal) (*uint256.Int, error) {
	return r.readAmount(ctx,
		`SELECT amount::text FROM token_allowances WHERE token = $1 AND owner = $2 AND spender = $3`,
		token.Bytes(), owner.Bytes(), spender.Bytes())
}

func (r *TokenRepo) Approve(ctx context.Context, token common.Address, owner, spender domain.Principal, amount *uint256.Int) error {
	query := `INSERT INTO token_allowances (token, owner, spender, amount)
		VALUES ($1, $2, $3, $4::numeric)
		ON CONFLICT (token, owner, spender) DO UPDATE SET amount = EXCLUDED.amount`

	_, err := conn(ctx, r.pool).Exec(ctx, query, token.Bytes(), owner.Bytes(), spender.Bytes(), amount.Dec())
	if err != nil {
		return fmt.Errorf("approve: %w", err)
	}
	return nil
}

func (r *TokenRepo) Transfer(ctx context.Context, token common.Address, from, to domain.Principal, amount *uint256.Int) error {
	return r.move(ctx, conn(ctx, r.pool), token, from, to, amount)
}

// TransferFrom spends the allowance first, then moves the balance. Callers
// run it inside a transaction so a failed move restores the allowance.
func (r *TokenRepo) TransferFrom(ctx context.Context, token common.Address, spender, from, to domain.Principal, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	q := conn(ctx, r.pool)

	query := `UPDATE token_allowances SET amount = amount - $4::numeric
		WHERE token = $1 AND owner = $2 AND spender = $3 AND amount >= $4::numeric`

	tag, err := q.Exec(ctx, query, token.Bytes(), from.Bytes(), spender.Bytes(), amount.Dec())
	if err != nil {
		return fmt.Errorf("spend allowance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientAllowance
	}
	return r.move(ctx, q, token, from, to, amount)
}

func (r *TokenRepo) Mint(ctx context.Context, token common.Address, to domain.Principal, amount *uint256.Int) error {
	return r.credit(ctx, conn(ctx, r.pool), token, to, amount)
}

func (r *TokenRepo) move(ctx context.Context, q querier, token common.Address, from, to domain.Principal, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	if from == to {
		bal, err := r.readAmount(ctx,
			`SELECT amount::text FROM token_balances WHERE token = $1 AND owner = $2`,
			token.Bytes(), from.Bytes())
		if err != nil {
			return err
		}
		if bal.Lt(amount) {
			return domain.ErrInsufficientBalance
		}
		return nil
	}

	query := `UPDATE token_balances SET amount = amount - $3::numeric
		WHERE token = $1 AND owner = $2 AND amount >= $3::numeric`

	tag, err := q.Exec(ctx, query, token.Bytes(), from.Bytes(), amount.Dec())
	if err != nil {
		return fmt.Errorf("debit balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientBalance
	}
	return r.credit(ctx, q, token, to, amount)
}

func (r *TokenRepo) credit(ctx context.Context, q querier, token common.Address, to domain.Principal, amount *uint256.Int) error {
	query := `INSERT INTO token_balances (token, owner, amount)
		VALUES ($1, $2, $3::numeric)
		ON CONFLICT (token, owner) DO UPDATE SET amount = token_balances.amount + EXCLUDED.amount`

	_, err := q.Exec(ctx, query, token.Bytes(), to.Bytes(), amount.Dec())
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrBalanceOverflow
		}
		return fmt.Errorf("credit balance: %w", err)
	}
	return nil
}

func (r *TokenRepo) readAmount(ctx context.Context, query string, args ...any) (*uint256.Int, error) {
	var s string
	err := conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return new(uint256.Int), nil
		}
		return nil, fmt.Errorf("read amount: %w", err)
	}
	return decodeAmount(s)
}
