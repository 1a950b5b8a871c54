package ports

//go:generate mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks

import (
	"context"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// IdentityLedger is the external registry that mints identities and answers
// who controls them. Answers may change between calls and must not be cached.
type IdentityLedger interface {
	// CreateIdentity mints a new identity controlled by owner. referrerHint
	// is passed through to the ledger and carries no meaning here.
	CreateIdentity(ctx context.Context, referrerHint domain.DID, owner domain.Principal) (domain.DID, error)
	// ResolveController returns the current controller, ok=false when the
	// identity is unknown or deleted.
	ResolveController(ctx context.Context, id domain.DID) (domain.Principal, bool, error)
	// DeleteIdentity clears the controller. Only the controller may call it.
	DeleteIdentity(ctx context.Context, id domain.DID, caller domain.Principal) error
	// SetMetadata stores a 32-byte metadata hash. Only the controller may call it.
	SetMetadata(ctx context.Context, id domain.DID, caller domain.Principal, metadata common.Hash) error
	// Metadata returns the stored metadata hash, zero when unset.
	Metadata(ctx context.Context, id domain.DID) (common.Hash, error)
}

// ValueToken is a balance-holding asset addressed by a token address.
// Amounts are never nil on success.
type ValueToken interface {
	BalanceOf(ctx context.Context, token common.Address, owner domain.Principal) (*uint256.Int, error)
	Allowance(ctx context.Context, token common.Address, owner, spender domain.Principal) (*uint256.Int, error)
	Approve(ctx context.Context, token common.Address, owner, spender domain.Principal, amount *uint256.Int) error
	Transfer(ctx context.Context, token common.Address, from, to domain.Principal, amount *uint256.Int) error
	// TransferFrom moves amount from "from" to "to" spending the allowance
	// "from" granted to spender.
	TransferFrom(ctx context.Context, token common.Address, spender, from, to domain.Principal, amount *uint256.Int) error
	Mint(ctx context.Context, token common.Address, to domain.Principal, amount *uint256.Int) error
}
