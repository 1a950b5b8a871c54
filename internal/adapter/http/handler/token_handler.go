package handler

import (
	"did-payment-splitter/internal/adapter/http/dto"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler handles value token account endpoints.
type TokenHandler struct {
	tokens ports.TokenAccountService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokens ports.TokenAccountService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Approve handles POST /api/v1/tokens/:token/approve.
func (h *TokenHandler) Approve(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	token, ok := principalParam(c, "token")
	if !ok {
		return
	}

	var req dto.ApproveRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	spender := mustPrincipal(req.Spender)
	if err := h.tokens.Approve(c.Request.Context(), token, caller, spender, amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AllowanceResponse{
		Token:     token.Hex(),
		Owner:     caller.Hex(),
		Spender:   spender.Hex(),
		Allowance: amount.Dec(),
	})
}

// Mint handles POST /api/v1/tokens/:token/mint.
func (h *TokenHandler) Mint(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	token, ok := principalParam(c, "token")
	if !ok {
		return
	}

	var req dto.MintRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	to := mustPrincipal(req.To)
	if err := h.tokens.Mint(c.Request.Context(), caller, token, to, amount); err != nil {
		response.Error(c, err)
		return
	}

	balance, err := h.tokens.BalanceOf(c.Request.Context(), token, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.BalanceResponse{Token: token.Hex(), Owner: to.Hex(), Balance: balance.Dec()})
}

// Balance handles GET /api/v1/tokens/:token/balances/:owner.
func (h *TokenHandler) Balance(c *gin.Context) {
	token, ok := principalParam(c, "token")
	if !ok {
		return
	}
	owner, ok := principalParam(c, "owner")
	if !ok {
		return
	}

	balance, err := h.tokens.BalanceOf(c.Request.Context(), token, owner)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Token: token.Hex(), Owner: owner.Hex(), Balance: balance.Dec()})
}

// Allowance handles GET /api/v1/tokens/:token/allowances/:owner/:spender.
func (h *TokenHandler) Allowance(c *gin.Context) {
	token, ok := principalParam(c, "token")
	if !ok {
		return
	}
	owner, ok := principalParam(c, "owner")
	if !ok {
		return
	}
	spender, ok := principalParam(c, "spender")
	if !ok {
		return
	}

	allowance, err := h.tokens.Allowance(c.Request.Context(), token, owner, spender)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AllowanceResponse{
		Token:     token.Hex(),
		Owner:     owner.Hex(),
		Spender:   spender.Hex(),
		Allowance: allowance.Dec(),
	})
}
