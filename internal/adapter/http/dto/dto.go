package dto

// TokenResponse is the response body for a issued session token.
type TokenResponse struct {
	Token     string `json:"token"`
	Principal string `json:"principal"`
	Expiry    int64  `json:"expiry"` // Unix timestamp
}

// CreateIdentityRequest is the request body for minting an identity.
// Referrer is an optional upline identity.
type CreateIdentityRequest struct {
	Referrer string `json:"referrer" binding:"omitempty,did"`
}

// IdentityResponse is returned after an identity is minted.
type IdentityResponse struct {
	ID         string `json:"id"`
	Controller string `json:"controller"`
	Referrer   string `json:"referrer,omitempty"`
}

// ControllerResponse is the live ledger view of an identity.
type ControllerResponse struct {
	ID         string `json:"id"`
	Controller string `json:"controller"`
	Active     bool   `json:"active"`
	Metadata   string `json:"metadata,omitempty"`
}

// MetadataRequest is the request body for setting identity metadata.
type MetadataRequest struct {
	Metadata string `json:"metadata" binding:"required,bytes32"`
}

// PrincipalRequest carries a single principal address.
type PrincipalRequest struct {
	Principal string `json:"principal" binding:"required,address"`
}

// OwnerRequest is the request body for transferring ownership.
type OwnerRequest struct {
	Owner string `json:"owner" binding:"required,address"`
}

// WhitelistResponse reports whitelist membership.
type WhitelistResponse struct {
	Principal   string `json:"principal"`
	Whitelisted bool   `json:"whitelisted"`
}

// OwnerResponse reports the current owner.
type OwnerResponse struct {
	Owner string `json:"owner"`
}

// IdentityRequest carries a single identity, e.g. for vendor registration.
type IdentityRequest struct {
	ID string `json:"id" binding:"required,did"`
}

// StatusResponse reports registry membership for an identity.
type StatusResponse struct {
	ID     string `json:"id"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// AffiliateLinkRequest is the request body for linking a child to a parent.
type AffiliateLinkRequest struct {
	Parent string `json:"parent" binding:"required,did"`
}

// AffiliateLinkResponse reports the upline of an identity. Parent is empty
// when no link exists.
type AffiliateLinkResponse struct {
	Child  string `json:"child"`
	Parent string `json:"parent,omitempty"`
}

// PaymentRequest is the request body for a split payment. Amount is a
// base-10 uint256. Commission percentages are capped at 100.
type PaymentRequest struct {
	Token             string `json:"token" binding:"required,address"`
	Sender            string `json:"sender" binding:"required,did"`
	Recipient         string `json:"recipient" binding:"required,did"`
	Amount            string `json:"amount" binding:"required,uint256"`
	PurchaseRef       string `json:"purchase_ref" binding:"omitempty,bytes32"`
	Affiliate1Percent uint64 `json:"affiliate1_percent" binding:"max=100"`
	Affiliate2Percent uint64 `json:"affiliate2_percent" binding:"max=100"`
}

// PayoutResponse is one leg of an executed payment.
type PayoutResponse struct {
	Role     string `json:"role"`
	Identity string `json:"identity"`
	Payee    string `json:"payee"`
	Amount   string `json:"amount"`
}

// PaymentResponse is the receipt of an executed payment.
type PaymentResponse struct {
	Token       string           `json:"token"`
	Sender      string           `json:"sender"`
	Recipient   string           `json:"recipient"`
	Payer       string           `json:"payer"`
	PurchaseRef string           `json:"purchase_ref"`
	Amount      string           `json:"amount"`
	Payouts     []PayoutResponse `json:"payouts"`
	ExecutedAt  string           `json:"executed_at"`
}

// CustodyResponse names the principal payers approve as spender.
type CustodyResponse struct {
	Custody string `json:"custody"`
}

// ApproveRequest is the request body for a token approval.
type ApproveRequest struct {
	Spender string `json:"spender" binding:"required,address"`
	Amount  string `json:"amount" binding:"required,uint256"`
}

// MintRequest is the request body for the owner-only faucet.
type MintRequest struct {
	To     string `json:"to" binding:"required,address"`
	Amount string `json:"amount" binding:"required,uint256"`
}

// BalanceResponse reports a token balance.
type BalanceResponse struct {
	Token   string `json:"token"`
	Owner   string `json:"owner"`
	Balance string `json:"balance"`
}

// AllowanceResponse reports a token allowance.
type AllowanceResponse struct {
	Token     string `json:"token"`
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance string `json:"allowance"`
}
