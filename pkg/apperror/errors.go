package apperror

import (
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

// ---- Validation (VAL) ----

// Validation returns a 400 for a malformed key or payload.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("VAL_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- State machine (STATE) ----

// ErrStateConflict flags an illegal status transition. This is a programming
// or race bug and must be surfaced loudly, never swallowed.
func ErrStateConflict(err error) *AppError {
	return Wrap("STATE_001", "Illegal effect state transition", http.StatusConflict, err)
}

// ErrDuplicateResult flags a second success attempt on an effect that
// already holds a vendor result. It indicates a claim-guard failure
// upstream.
func ErrDuplicateResult(err error) *AppError {
	return Wrap("STATE_002", "Effect already holds a vendor result", http.StatusInternalServerError, err)
}

// ---- External vendor (EXT) ----

// ErrVendorFailure carries the classified vendor error code and message.
// The effect stays retry-eligible per its backoff policy.
func ErrVendorFailure(vendorCode, vendorMsg string) *AppError {
	return New("EXT_001", fmt.Sprintf("Vendor rejected request (%s): %s", vendorCode, vendorMsg), http.StatusBadGateway)
}

// ErrVendorTimeout classifies a vendor call that exceeded its deadline.
func ErrVendorTimeout(err error) *AppError {
	return Wrap("EXT_002", "Vendor call timed out", http.StatusGatewayTimeout, err)
}

// ErrVendorTransport classifies a transport-level vendor failure.
func ErrVendorTransport(err error) *AppError {
	return Wrap("EXT_003", "Vendor call failed", http.StatusBadGateway, err)
}

// ErrSessionIssue reports a failure to obtain a vendor session token.
func ErrSessionIssue(err error) *AppError {
	return Wrap("EXT_004", "Vendor session could not be established", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
