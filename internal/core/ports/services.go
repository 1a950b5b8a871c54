package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// AccessGate holds the capability checks mutators run before acting.
type AccessGate interface {
	RequireOwner(ctx context.Context, caller domain.Principal) error
	RequireWhitelisted(ctx context.Context, caller domain.Principal) error
}

// AdminService manages the owning admin and the whitelisted set.
type AdminService interface {
	AccessGate
	AddWhitelisted(ctx context.Context, caller, p domain.Principal) error
	RemoveWhitelisted(ctx context.Context, caller, p domain.Principal) error
	IsWhitelisted(ctx context.Context, p domain.Principal) (bool, error)
	Owner(ctx context.Context) (domain.Principal, error)
	TransferOwnership(ctx context.Context, caller, newOwner domain.Principal) error
	// Bootstrap stores owner if no owner exists yet.
	Bootstrap(ctx context.Context, owner domain.Principal) error
}

// RegistryService manages vendors, affiliates, affiliate links and
// identity creation.
type RegistryService interface {
	CreateIdentity(ctx context.Context, caller domain.Principal, referrer domain.DID) (*domain.IdentityResult, error)
	RegisterVendor(ctx context.Context, caller domain.Principal, id domain.DID) error
	RemoveVendor(ctx context.Context, caller domain.Principal, id domain.DID) error
	RegisterAffiliate(ctx context.Context, caller domain.Principal, id domain.DID) error
	RemoveAffiliate(ctx context.Context, caller domain.Principal, id domain.DID) error
	AddAffiliateLink(ctx context.Context, caller domain.Principal, child, parent domain.DID) error
	RemoveAffiliateLink(ctx context.Context, caller domain.Principal, child domain.DID) error

	VendorStatus(ctx context.Context, id domain.DID) (bool, error)
	AffiliateStatus(ctx context.Context, id domain.DID) (bool, error)
	AffiliateLink(ctx context.Context, child domain.DID) (domain.DID, error)

	ResolveIdentity(ctx context.Context, id domain.DID) (*IdentityInfo, error)
	DeleteIdentity(ctx context.Context, caller domain.Principal, id domain.DID) error
	SetIdentityMetadata(ctx context.Context, caller domain.Principal, id domain.DID, metadata common.Hash) error
}

// IdentityInfo is the live ledger view of an identity.
type IdentityInfo struct {
	ID         domain.DID
	Controller domain.Principal
	Active     bool
	Metadata   common.Hash
}

// PaymentService routes a payment from a sender identity to a vendor,
// paying affiliate commissions on the way.
type PaymentService interface {
	MakePayment(ctx context.Context, req PaymentRequest) (*domain.PaymentReceipt, error)
}

// PaymentRequest holds validated input for a split payment.
type PaymentRequest struct {
	Token             common.Address
	Sender            domain.DID
	Recipient         domain.DID
	Amount            *uint256.Int
	PurchaseRef       common.Hash
	Affiliate1Percent uint64
	Affiliate2Percent uint64
	Caller            domain.Principal
}

// TokenAccountService exposes value token accounts to callers.
type TokenAccountService interface {
	Approve(ctx context.Context, token common.Address, owner, spender domain.Principal, amount *uint256.Int) error
	// Mint is the owner-only faucet.
	Mint(ctx context.Context, caller domain.Principal, token common.Address, to domain.Principal, amount *uint256.Int) error
	BalanceOf(ctx context.Context, token common.Address, owner domain.Principal) (*uint256.Int, error)
	Allowance(ctx context.Context, token common.Address, owner, spender domain.Principal) (*uint256.Int, error)
}

// EventPublisher delivers events to every configured sink. It never fails
// the caller; sink errors are logged.
type EventPublisher interface {
	Publish(ctx context.Context, events ...*domain.Event)
}

// SignatureVerifier recovers the principal that signed a request.
type SignatureVerifier interface {
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
	// Recover returns the address whose key produced signature over message.
	Recover(message string, signature []byte) (domain.Principal, error)
}

// SessionTokenService handles JWT session tokens.
type SessionTokenService interface {
	Generate(p domain.Principal) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Principal domain.Principal
}
