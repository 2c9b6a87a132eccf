package ports

import (
	"errors"
	"fmt"

	"partnerconsole/internal/core/domain/model/kernel"
)

var (
	// ErrSessionExpired is returned when any authenticated upstream call
	// answers 401. The caller must purge the session's stored credentials;
	// the partner re-authenticates on the next guarded navigation.
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidCredentials marks sign-in rejections. Use errors.Is against
	// this sentinel; InvalidCredentialsError carries the message to show.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyAssigned marks a claim race lost: another partner's accept
	// reached the upstream first. The caller must re-fetch the order to
	// reconcile, never trust its optimistic local state.
	ErrAlreadyAssigned = errors.New("order already assigned")

	// ErrNetwork marks transport-level failures (connection, timeout).
	ErrNetwork = errors.New("network error")

	// ErrServer marks application-level failures: a wrapped response with
	// success=false, regardless of HTTP status.
	ErrServer = errors.New("server error")

	// ErrMalformedResponse marks upstream payloads that failed schema
	// validation before entering the domain model.
	ErrMalformedResponse = errors.New("malformed response")
)

// InvalidCredentialsError reports a rejected sign-in. Message prefers the
// server-supplied message and falls back to the transport error's text, so
// the UI always has a single human-readable line to show.
type InvalidCredentialsError struct {
	Message string
}

func (e *InvalidCredentialsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrInvalidCredentials.Error()
}

func (e *InvalidCredentialsError) Unwrap() error {
	return ErrInvalidCredentials
}

// AlreadyAssignedError reports a claim race lost on a specific order.
type AlreadyAssignedError struct {
	OrderID kernel.RemoteID
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("order %s already assigned to another partner", e.OrderID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// NetworkError reports a transport failure for an upstream operation.
type NetworkError struct {
	Op    string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s: %s", e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return ErrNetwork
}

// ServerError reports an application-level upstream failure: either a
// non-2xx HTTP status or a wrapped response with success=false on 2xx.
// Message holds the server-supplied message when one was present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}

func (e *ServerError) Unwrap() error {
	return ErrServer
}

// MalformedResponseError reports an upstream payload that failed schema
// validation at the transport boundary.
type MalformedResponseError struct {
	Op    string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s: %s", e.Op, e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}
