package ports

import (
	"context"
	"time"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/session"
)

// SessionRepository persists console sessions between requests.
type SessionRepository interface {
	// Get loads a session by its console identifier. A missing session maps
	// to errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// Save upserts a session.
	Save(ctx context.Context, s *session.Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// AllAuthenticated returns every session currently in the authenticated
	// state, for background profile and order refresh.
	AllAuthenticated(ctx context.Context) ([]*session.Session, error)

	// DeleteExpired removes sessions whose credentials all lapsed before
	// now, returning the number removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
