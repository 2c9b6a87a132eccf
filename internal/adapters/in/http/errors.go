package http

import (
	"errors"
	"net/http"

	"partnerconsole/internal/core/domain/services"
	"partnerconsole/internal/core/ports"
	"partnerconsole/internal/pkg/errs"
)

// mapError translates application errors into an HTTP status and a message
// safe to show in the console UI.
func mapError(err error) (int, string) {
	var lockedErr *services.LockedByAnotherPartnerError
	if errors.As(err, &lockedErr) {
		return http.StatusForbidden, "This order is being fulfilled by " + lockedErr.PartnerLabel
	}

	var credErr *ports.InvalidCredentialsError
	if errors.As(err, &credErr) {
		return http.StatusUnauthorized, credErr.Error()
	}

	switch {
	case errors.Is(err, services.ErrNotYetAccepted):
		return http.StatusForbidden, "Accept this order before updating it"
	case errors.Is(err, services.ErrAlreadyAccepted):
		return http.StatusConflict, "You have already accepted this order"
	case errors.Is(err, services.ErrOrderCancelled):
		return http.StatusConflict, "Cancelled orders cannot be accepted"
	case errors.Is(err, ports.ErrAlreadyAssigned):
		return http.StatusConflict, "Another partner accepted this order first"
	case errors.Is(err, ports.ErrSessionExpired):
		return http.StatusUnauthorized, "Your session has expired, please sign in again"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, ports.ErrNetwork),
		errors.Is(err, ports.ErrServer),
		errors.Is(err, ports.ErrMalformedResponse):
		return http.StatusBadGateway, "The order service is unreachable, try again shortly"
	default:
		return http.StatusInternalServerError, "Something went wrong"
	}
}
