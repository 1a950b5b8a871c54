package service

import (
	"context"
	"fmt"

	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// TokenAccountServiceImpl implements ports.TokenAccountService.
type TokenAccountServiceImpl struct {
	token      ports.ValueToken
	gate       ports.AccessGate
	transactor ports.Transactor
	log        zerolog.Logger
}

// NewTokenAccountService creates a new TokenAccountServiceImpl.
func NewTokenAccountService(token ports.ValueToken, gate ports.AccessGate, transactor ports.Transactor, log zerolog.Logger) *TokenAccountServiceImpl {
	return &TokenAccountServiceImpl{token: token, gate: gate, transactor: transactor, log: log}
}

// Approve sets the allowance owner grants spender.
func (s *TokenAccountServiceImpl) Approve(ctx context.Context, token common.Address, owner, spender domain.Principal, amount *uint256.Int) error {
	if amount == nil {
		return apperror.ErrInvalidAmount()
	}
	if spender == domain.NoPrincipal {
		return apperror.ErrInvalidPrincipal()
	}

	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		return s.token.Approve(ctx, token, owner, spender, amount)
	})
	if err != nil {
		return tokenError("approve", err)
	}

	s.log.Info().
		Str("token", token.Hex()).
		Str("owner", owner.Hex()).
		Str("spender", spender.Hex()).
		Str("amount", amount.Dec()).
		Msg("allowance set")
	return nil
}

// Mint credits amount to "to". Only the owning admin may mint.
func (s *TokenAccountServiceImpl) Mint(ctx context.Context, caller domain.Principal, token common.Address, to domain.Principal, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return apperror.ErrInvalidAmount()
	}
	if to == domain.NoPrincipal {
		return apperror.ErrInvalidPrincipal()
	}

	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.gate.RequireOwner(ctx, caller); err != nil {
			return err
		}
		if err := s.token.Mint(ctx, token, to, amount); err != nil {
			return tokenError("mint", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("token", token.Hex()).
		Str("to", to.Hex()).
		Str("amount", amount.Dec()).
		Msg("tokens minted")
	return nil
}

// BalanceOf returns the balance of owner.
func (s *TokenAccountServiceImpl) BalanceOf(ctx context.Context, token common.Address, owner domain.Principal) (*uint256.Int, error) {
	b, err := s.token.BalanceOf(ctx, token, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("balance of: %w", err))
	}
	return b, nil
}

// Allowance returns what spender may still move on behalf of owner.
func (s *TokenAccountServiceImpl) Allowance(ctx context.Context, token common.Address, owner, spender domain.Principal) (*uint256.Int, error) {
	a, err := s.token.Allowance(ctx, token, owner, spender)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("allowance: %w", err))
	}
	return a, nil
}
