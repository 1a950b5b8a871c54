package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the AppError code carried by err, or "" if there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Authorization (AUTH) ----

// ErrUnauthorized: caller is not the current controller of the sender identity.
func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Caller does not control the sender identity", http.StatusForbidden)
}

func ErrAdminOnly() *AppError {
	return New("AUTH_002", "Only the owning admin may perform this action", http.StatusForbidden)
}

func ErrWhitelistOnly() *AppError {
	return New("AUTH_003", "Only whitelisted principals may perform this action", http.StatusForbidden)
}

func ErrInvalidSignature() *AppError {
	return New("AUTH_004", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("AUTH_005", "Request timestamp expired", http.StatusUnauthorized)
}

func ErrNonceUsed() *AppError {
	return New("AUTH_006", "Nonce has already been used", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_007", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNotController() *AppError {
	return New("AUTH_008", "Caller does not control this identity", http.StatusForbidden)
}

// ---- Registry (REG) ----

func ErrInvalidIdentity() *AppError {
	return New("REG_001", "Invalid identity", http.StatusBadRequest)
}

func ErrInvalidPrincipal() *AppError {
	return New("REG_002", "Invalid principal", http.StatusBadRequest)
}

// ErrIdentityCreationFailed passes through a ledger minting failure.
func ErrIdentityCreationFailed(err error) *AppError {
	return Wrap("REG_003", "Identity ledger rejected identity creation", http.StatusBadGateway, err)
}

func ErrIdentityNotFound() *AppError {
	return New("REG_004", "Identity not found", http.StatusNotFound)
}

// ---- Payment (PAY) ----

func ErrInvalidVendor() *AppError {
	return New("PAY_001", "Recipient is not an active vendor", http.StatusUnprocessableEntity)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidSplit() *AppError {
	return New("PAY_003", "Affiliate commissions exceed the payment amount", http.StatusUnprocessableEntity)
}

// ---- Value token (TOKEN) ----

func ErrInsufficientBalance() *AppError {
	return New("TOKEN_001", "Insufficient token balance", http.StatusPaymentRequired)
}

func ErrInsufficientAllowance() *AppError {
	return New("TOKEN_002", "Insufficient token allowance", http.StatusPaymentRequired)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
