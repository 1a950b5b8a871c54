package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// PayoutRole identifies a leg of a split payment.
type PayoutRole string

const (
	PayoutVendor     PayoutRole = "VENDOR"
	PayoutAffiliate1 PayoutRole = "AFFILIATE_1"
	PayoutAffiliate2 PayoutRole = "AFFILIATE_2"
)

// Payout is one transfer out of custody.
type Payout struct {
	Role     PayoutRole   `json:"role"`
	Identity DID          `json:"identity"`
	Payee    Principal    `json:"payee"`
	Amount   *uint256.Int `json:"-"`
}

// PaymentReceipt describes an executed payment. It is returned to the caller
// and published as an event; nothing stores it.
type PaymentReceipt struct {
	Token             common.Address `json:"token"`
	Sender            DID            `json:"sender"`
	Recipient         DID            `json:"recipient"`
	Payer             Principal      `json:"payer"`
	PurchaseRef       common.Hash    `json:"purchase_ref"`
	Amount            *uint256.Int   `json:"-"`
	Affiliate1Percent uint64         `json:"affiliate1_percent"`
	Affiliate2Percent uint64         `json:"affiliate2_percent"`
	Payouts           []Payout       `json:"payouts"`
	ExecutedAt        time.Time      `json:"executed_at"`
}

// Payout returns the leg for role, if it was paid.
func (r *PaymentReceipt) Payout(role PayoutRole) (Payout, bool) {
	for _, p := range r.Payouts {
		if p.Role == role {
			return p, true
		}
	}
	return Payout{}, false
}

// PaidOut sums every leg.
func (r *PaymentReceipt) PaidOut() *uint256.Int {
	total := new(uint256.Int)
	for _, p := range r.Payouts {
		total.Add(total, p.Amount)
	}
	return total
}
