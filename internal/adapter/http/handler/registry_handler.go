package handler

import (
	"context"
	"net/http"

	"did-payment-splitter/internal/adapter/http/dto"
	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler handles vendor, affiliate and affiliate link endpoints.
type RegistryHandler struct {
	registry ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registry ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

type roleOps struct {
	register func(ctx context.Context, caller domain.Principal, id domain.DID) error
	remove   func(ctx context.Context, caller domain.Principal, id domain.DID) error
	status   func(ctx context.Context, id domain.DID) (bool, error)
}

func (h *RegistryHandler) ops(role domain.Role) roleOps {
	if role == domain.RoleVendor {
		return roleOps{h.registry.RegisterVendor, h.registry.RemoveVendor, h.registry.VendorStatus}
	}
	return roleOps{h.registry.RegisterAffiliate, h.registry.RemoveAffiliate, h.registry.AffiliateStatus}
}

// Register handles POST /api/v1/vendors and POST /api/v1/affiliates.
func (h *RegistryHandler) Register(role domain.Role) gin.HandlerFunc {
	ops := h.ops(role)
	return func(c *gin.Context) {
		caller, ok := callerOrAbort(c)
		if !ok {
			return
		}

		var req dto.IdentityRequest
		if !bindJSON(c, &req) {
			return
		}

		id := mustDID(req.ID)
		if err := ops.register(c.Request.Context(), caller, id); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.StatusResponse{ID: id.Hex(), Role: string(role), Active: true})
	}
}

// Remove handles DELETE /api/v1/vendors/:did and DELETE /api/v1/affiliates/:did.
func (h *RegistryHandler) Remove(role domain.Role) gin.HandlerFunc {
	ops := h.ops(role)
	return func(c *gin.Context) {
		caller, ok := callerOrAbort(c)
		if !ok {
			return
		}
		id, ok := didParam(c, "did")
		if !ok {
			return
		}

		if err := ops.remove(c.Request.Context(), caller, id); err != nil {
			response.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Status handles GET /api/v1/vendors/:did and GET /api/v1/affiliates/:did.
func (h *RegistryHandler) Status(role domain.Role) gin.HandlerFunc {
	ops := h.ops(role)
	return func(c *gin.Context) {
		id, ok := didParam(c, "did")
		if !ok {
			return
		}

		active, err := ops.status(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.StatusResponse{ID: id.Hex(), Role: string(role), Active: active})
	}
}

// GetLink handles GET /api/v1/affiliate-links/:did.
func (h *RegistryHandler) GetLink(c *gin.Context) {
	child, ok := didParam(c, "did")
	if !ok {
		return
	}

	parent, err := h.registry.AffiliateLink(c.Request.Context(), child)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AffiliateLinkResponse{Child: child.Hex(), Parent: didString(parent)})
}

// SetLink handles PUT /api/v1/affiliate-links/:did.
func (h *RegistryHandler) SetLink(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	child, ok := didParam(c, "did")
	if !ok {
		return
	}

	var req dto.AffiliateLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	parent := mustDID(req.Parent)
	if err := h.registry.AddAffiliateLink(c.Request.Context(), caller, child, parent); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AffiliateLinkResponse{Child: child.Hex(), Parent: parent.Hex()})
}

// RemoveLink handles DELETE /api/v1/affiliate-links/:did.
func (h *RegistryHandler) RemoveLink(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	child, ok := didParam(c, "did")
	if !ok {
		return
	}

	if err := h.registry.RemoveAffiliateLink(c.Request.Context(), caller, child); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
