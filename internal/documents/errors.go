package documents

import (
	"errors"
	"strings"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrRenderFault   = errors.New("render fault")
	ErrSerialization = errors.New("serialization failed")
)

// Validation error codes
const (
	ErrCodeRequired        = "REQUIRED"
	ErrCodeInvalidFormat   = "INVALID_FORMAT"
	ErrCodeInvalidValue    = "INVALID_VALUE"
	ErrCodeEmptyChecklist  = "EMPTY_CHECKLIST"
	ErrCodeUnknownCategory = "UNKNOWN_CATEGORY"
)

// ValidationError reports one problem with an input record.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors collects every problem found in a record.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "invalid record: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// RenderFault is a broken layout invariant. It is a defect, not bad input.
type RenderFault struct {
	Op      string
	Message string
	Cause   error
}

func (e *RenderFault) Error() string {
	msg := "render fault in " + e.Op + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *RenderFault) Unwrap() error {
	return e.Cause
}

func (e *RenderFault) Is(target error) bool {
	return target == ErrRenderFault
}

// SerializationError means the artifact could not be produced or stored.
type SerializationError struct {
	Artifact string
	Cause    error
}

func (e *SerializationError) Error() string {
	if e.Cause != nil {
		return "failed to write " + e.Artifact + ": " + e.Cause.Error()
	}
	return "failed to write " + e.Artifact
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}
