package domain

import "errors"

// Errors reported by identity ledger and value token adapters. Services map
// them to apperror values.
var (
	ErrIdentityNotFound      = errors.New("identity not found")
	ErrNotController         = errors.New("caller is not the identity controller")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrBalanceOverflow       = errors.New("balance overflow")
	ErrZeroOwner             = errors.New("identity owner must be non-zero")

	ErrZeroAmount              = errors.New("amount must be positive")
	ErrAmountOverflow          = errors.New("amount overflows 256 bits")
	ErrCommissionExceedsAmount = errors.New("affiliate commissions exceed amount")
)
