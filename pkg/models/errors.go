package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures across component boundaries. Handlers map
// kinds to JSON-RPC error codes; internal callers branch on them without
// string matching.
type ErrorKind string

// Error kinds.
const (
	KindValidation        ErrorKind = "Validation"
	KindNotFound          ErrorKind = "NotFound"
	KindConflict          ErrorKind = "Conflict"
	KindQuotaExhausted    ErrorKind = "QuotaExhausted"
	KindNoProjectContext  ErrorKind = "NoProjectContext"
	KindTemplateNotFound  ErrorKind = "TemplateNotFound"
	KindTemplateRender    ErrorKind = "TemplateRenderError"
	KindAdapterExit       ErrorKind = "AdapterExit"
	KindAdapterIO         ErrorKind = "AdapterIO"
	KindTimeout           ErrorKind = "Timeout"
	KindCancelled         ErrorKind = "Cancelled"
	KindDependencyFailure ErrorKind = "DependencyFailure"
	KindInternal          ErrorKind = "Internal"
)

// KindError carries an ErrorKind alongside a message and optional cause.
type KindError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *KindError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *KindError) Unwrap() error {
	return e.Err
}

// NewKindError creates a KindError without a cause.
func NewKindError(kind ErrorKind, message string) *KindError {
	return &KindError{Kind: kind, Message: message}
}

// WrapKind wraps an underlying error with a kind and message.
func WrapKind(kind ErrorKind, message string, err error) *KindError {
	return &KindError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the ErrorKind from an error chain.
// Unclassified errors are KindInternal.
func KindOf(err error) ErrorKind {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	return KindInternal
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
