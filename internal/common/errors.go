package common

import (
	"errors"
	"fmt"
)

// Failure classes of the extraction pipeline. Callers match with errors.Is;
// the HTTP layer maps them to status codes.
var (
	ErrInvalidFormat       = errors.New("invalid document format")
	ErrScannedDocument     = errors.New("scanned document not supported")
	ErrInsufficientContent = errors.New("insufficient document content")
	ErrModel               = errors.New("model error")
	ErrMalformedResponse   = errors.New("malformed model response")
	ErrExtractionFailed    = errors.New("extraction failed")
	ErrNotConfigured       = errors.New("not configured")
	ErrNotFound            = errors.New("resource not found")
)

// Stable error codes carried by AppError.
const (
	CodeInvalidFormat       = "INVALID_FORMAT"
	CodeScannedDocument     = "SCANNED_DOCUMENT"
	CodeInsufficientContent = "INSUFFICIENT_CONTENT"
	CodeModelError          = "MODEL_ERROR"
	CodeMalformedResponse   = "MALFORMED_RESPONSE"
	CodeExtractionFailed    = "EXTRACTION_FAILED"
	CodeNotConfigured       = "NOT_CONFIGURED"
	CodeNotFound            = "NOT_FOUND"
)

var sentinelByCode = map[string]error{
	CodeInvalidFormat:       ErrInvalidFormat,
	CodeScannedDocument:     ErrScannedDocument,
	CodeInsufficientContent: ErrInsufficientContent,
	CodeModelError:          ErrModel,
	CodeMalformedResponse:   ErrMalformedResponse,
	CodeExtractionFailed:    ErrExtractionFailed,
	CodeNotConfigured:       ErrNotConfigured,
	CodeNotFound:            ErrNotFound,
}

// AppError is the application error type: a stable code, a human-readable
// message surfaced verbatim to the caller, and an optional underlying cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match an AppError against its class sentinel even when
// Cause carries a different underlying error.
func (e *AppError) Is(target error) bool {
	return sentinelByCode[e.Code] == target
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ErrorCode extracts the AppError code, or empty for foreign errors.
func ErrorCode(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
