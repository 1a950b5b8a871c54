package handler

import (
	"time"

	"did-payment-splitter/internal/adapter/http/dto"
	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
	custody    domain.Principal
}

// NewPaymentHandler creates a new PaymentHandler. custody is the spender
// payers approve before paying.
func NewPaymentHandler(paymentSvc ports.PaymentService, custody domain.Principal) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, custody: custody}
}

// MakePayment handles POST /api/v1/payments.
func (h *PaymentHandler) MakePayment(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	var purchaseRef common.Hash
	if req.PurchaseRef != "" {
		purchaseRef = common.HexToHash(req.PurchaseRef)
	}

	receipt, err := h.paymentSvc.MakePayment(c.Request.Context(), ports.PaymentRequest{
		Token:             mustPrincipal(req.Token),
		Sender:            mustDID(req.Sender),
		Recipient:         mustDID(req.Recipient),
		Amount:            amount,
		PurchaseRef:       purchaseRef,
		Affiliate1Percent: req.Affiliate1Percent,
		Affiliate2Percent: req.Affiliate2Percent,
		Caller:            caller,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPaymentResponse(receipt))
}

// Custody handles GET /api/v1/payments/custody.
func (h *PaymentHandler) Custody(c *gin.Context) {
	response.OK(c, dto.CustodyResponse{Custody: h.custody.Hex()})
}

// toPaymentResponse converts domain.PaymentReceipt to DTO.
func toPaymentResponse(r *domain.PaymentReceipt) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		Token:       r.Token.Hex(),
		Sender:      r.Sender.Hex(),
		Recipient:   r.Recipient.Hex(),
		Payer:       r.Payer.Hex(),
		PurchaseRef: r.PurchaseRef.Hex(),
		Amount:      r.Amount.Dec(),
		Payouts:     make([]dto.PayoutResponse, 0, len(r.Payouts)),
		ExecutedAt:  r.ExecutedAt.Format(time.RFC3339),
	}
	for _, p := range r.Payouts {
		resp.Payouts = append(resp.Payouts, dto.PayoutResponse{
			Role:     string(p.Role),
			Identity: p.Identity.Hex(),
			Payee:    p.Payee.Hex(),
			Amount:   p.Amount.Dec(),
		})
	}
	return resp
}
