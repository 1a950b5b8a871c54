package handler

import (
	"net/http"

	"did-payment-splitter/internal/adapter/http/dto"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues session tokens to signature-authenticated principals.
type AuthHandler struct {
	tokenSvc ports.SessionTokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenSvc ports.SessionTokenService) *AuthHandler {
	return &AuthHandler{tokenSvc: tokenSvc}
}

// IssueToken handles POST /api/v1/auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	token, expiry, err := h.tokenSvc.Generate(caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:     token,
		Principal: caller.Hex(),
		Expiry:    expiry.Unix(),
	})
}

// HealthCheck returns a handler that checks all infrastructure dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
