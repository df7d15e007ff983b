// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed onboarding step. The orchestrator decides
// per kind whether a failure aborts its branch (directory) or is merely
// reported to the operator (chat, collaboration orgs).
type ErrorKind string

const (
	// KindConfig: missing or malformed process configuration. Fatal before
	// any prompt is shown.
	KindConfig ErrorKind = "CONFIG"
	// KindAuth: the interactive consent flow failed or was denied. Fatal to
	// the directory branch only.
	KindAuth ErrorKind = "AUTH"
	// KindDirectoryAPI: non-success response from the directory service.
	// Fatal to the specific sub-step that issued the call.
	KindDirectoryAPI ErrorKind = "DIRECTORY_API"
	// KindNetwork: transport-level failure for any client. Best-effort
	// integrations report it and carry on.
	KindNetwork ErrorKind = "NETWORK"
)

// StepError represents a failure of one onboarding step. Details carries
// the raw response body when one is available, for operator diagnosis.
type StepError struct {
	Kind    ErrorKind
	Message string
	Details string
	Err     error
}

func (e *StepError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func NewStepError(kind ErrorKind, message string) *StepError {
	return &StepError{Kind: kind, Message: message}
}

func NewConfigError(message string) *StepError {
	return NewStepError(KindConfig, message)
}

func NewAuthError(message string) *StepError {
	return NewStepError(KindAuth, message)
}

func NewDirectoryAPIError(message string) *StepError {
	return NewStepError(KindDirectoryAPI, message)
}

func NewNetworkError(message string) *StepError {
	return NewStepError(KindNetwork, message)
}

// WithDetails attaches a raw response body (or similar diagnostic text).
func (e *StepError) WithDetails(details string) *StepError {
	e.Details = details
	return e
}

// Wrap records the underlying cause for errors.Is / errors.As chains.
func (e *StepError) Wrap(err error) *StepError {
	e.Err = err
	return e
}

func IsStepError(err error) (*StepError, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr, true
	}
	return nil, false
}
