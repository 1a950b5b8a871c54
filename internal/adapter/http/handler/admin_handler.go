package handler

import (
	"net/http"

	"did-payment-splitter/internal/adapter/http/dto"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles owner and whitelist endpoints.
type AdminHandler struct {
	admin ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// AddWhitelisted handles POST /api/v1/admin/whitelist.
func (h *AdminHandler) AddWhitelisted(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.PrincipalRequest
	if !bindJSON(c, &req) {
		return
	}

	p := mustPrincipal(req.Principal)
	if err := h.admin.AddWhitelisted(c.Request.Context(), caller, p); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WhitelistResponse{Principal: p.Hex(), Whitelisted: true})
}

// RemoveWhitelisted handles DELETE /api/v1/admin/whitelist/:principal.
func (h *AdminHandler) RemoveWhitelisted(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	p, ok := principalParam(c, "principal")
	if !ok {
		return
	}

	if err := h.admin.RemoveWhitelisted(c.Request.Context(), caller, p); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// IsWhitelisted handles GET /api/v1/admin/whitelist/:principal.
func (h *AdminHandler) IsWhitelisted(c *gin.Context) {
	p, ok := principalParam(c, "principal")
	if !ok {
		return
	}

	whitelisted, err := h.admin.IsWhitelisted(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WhitelistResponse{Principal: p.Hex(), Whitelisted: whitelisted})
}

// Owner handles GET /api/v1/admin/owner.
func (h *AdminHandler) Owner(c *gin.Context) {
	owner, err := h.admin.Owner(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OwnerResponse{Owner: owner.Hex()})
}

// TransferOwnership handles PUT /api/v1/admin/owner.
func (h *AdminHandler) TransferOwnership(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.OwnerRequest
	if !bindJSON(c, &req) {
		return
	}

	newOwner := mustPrincipal(req.Owner)
	if err := h.admin.TransferOwnership(c.Request.Context(), caller, newOwner); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OwnerResponse{Owner: newOwner.Hex()})
}
