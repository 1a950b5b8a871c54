package handler

import (
	"did-payment-splitter/internal/adapter/http/dto"
	"did-payment-splitter/internal/adapter/http/middleware"
	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/pkg/apperror"
	"did-payment-splitter/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

// The helpers below write the error response themselves and report
// whether the handler may continue.

func callerOrAbort(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return domain.NoPrincipal, false
	}
	return p, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

func didParam(c *gin.Context, name string) (domain.DID, bool) {
	id, err := domain.ParseDID(c.Param(name))
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentity())
		return domain.NoDID, false
	}
	return id, true
}

func principalParam(c *gin.Context, name string) (domain.Principal, bool) {
	p, err := domain.ParsePrincipal(c.Param(name))
	if err != nil {
		response.Error(c, apperror.ErrInvalidPrincipal())
		return domain.NoPrincipal, false
	}
	return p, true
}

// mustPrincipal and mustDID parse fields already checked by binding tags.

func mustPrincipal(s string) domain.Principal {
	p, _ := domain.ParsePrincipal(s)
	return p
}

func mustDID(s string) domain.DID {
	if s == "" {
		return domain.NoDID
	}
	id, _ := domain.ParseDID(s)
	return id
}

func parseAmount(c *gin.Context, s string) (*uint256.Int, bool) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return nil, false
	}
	return v, true
}

func didString(id domain.DID) string {
	if id == domain.NoDID {
		return ""
	}
	return id.Hex()
}
