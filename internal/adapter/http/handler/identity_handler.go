package handler

import (
	"net/http"

	"did-payment-splitter/internal/adapter/http/dto"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// IdentityHandler handles identity lifecycle endpoints.
type IdentityHandler struct {
	registry ports.RegistryService
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(registry ports.RegistryService) *IdentityHandler {
	return &IdentityHandler{registry: registry}
}

// Create handles POST /api/v1/identities. The body may be empty.
func (h *IdentityHandler) Create(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateIdentityRequest
	if c.Request.ContentLength != 0 {
		if !bindJSON(c, &req) {
			return
		}
	}

	result, err := h.registry.CreateIdentity(c.Request.Context(), caller, mustDID(req.Referrer))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.IdentityResponse{
		ID:         result.ID.Hex(),
		Controller: result.Controller.Hex(),
		Referrer:   didString(result.Referrer),
	})
}

// Resolve handles GET /api/v1/identities/:did/controller.
func (h *IdentityHandler) Resolve(c *gin.Context) {
	id, ok := didParam(c, "did")
	if !ok {
		return
	}

	info, err := h.registry.ResolveIdentity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ControllerResponse{
		ID:         info.ID.Hex(),
		Controller: info.Controller.Hex(),
		Active:     info.Active,
	}
	if info.Metadata != (common.Hash{}) {
		resp.Metadata = info.Metadata.Hex()
	}
	response.OK(c, resp)
}

// Delete handles DELETE /api/v1/identities/:did.
func (h *IdentityHandler) Delete(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := didParam(c, "did")
	if !ok {
		return
	}

	if err := h.registry.DeleteIdentity(c.Request.Context(), caller, id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetMetadata handles PUT /api/v1/identities/:did/metadata.
func (h *IdentityHandler) SetMetadata(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := didParam(c, "did")
	if !ok {
		return
	}

	var req dto.MetadataRequest
	if !bindJSON(c, &req) {
		return
	}

	metadata := common.HexToHash(req.Metadata)
	if err := h.registry.SetIdentityMetadata(c.Request.Context(), caller, id, metadata); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ControllerResponse{
		ID:         id.Hex(),
		Controller: caller.Hex(),
		Active:     true,
		Metadata:   metadata.Hex(),
	})
}
