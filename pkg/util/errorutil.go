package util

import (
	"errors"
	"fmt"
)

// Error codes for the failure taxonomy. All failures are local, synchronous
// and non-retryable; callers surface them directly.
const (
	CodeNotFound          = "NOT_FOUND"
	CodePolicyDenied      = "POLICY_DENIED"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeAuthError         = "AUTH_ERROR"
	CodeAuthorization     = "AUTHORIZATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, Details: details}
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), details)
}

// NewPolicyDenied wraps a policy rejection; the message is the policy's
// human-readable reason string.
func NewPolicyDenied(reason string) error {
	return NewDomainError(CodePolicyDenied, reason, map[string]any{"reason": reason})
}

func NewRateLimitExceeded() error {
	return NewDomainError(CodeRateLimitExceeded, "rate limit exceeded", nil)
}

func NewAuthError(message string) error {
	return NewDomainError(CodeAuthError, message, nil)
}

func NewAuthorizationError(message string) error {
	return NewDomainError(CodeAuthorization, message, nil)
}

func NewInternalError(err error) error {
	return &DomainError{Code: CodeInternal, Message: "internal error", Err: err}
}

// CodeOf extracts the domain error code, or CodeInternal for foreign errors.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given domain error code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}
