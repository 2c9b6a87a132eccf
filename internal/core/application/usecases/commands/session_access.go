package commands

import (
	"time"

	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/ports"
)

// authenticatedPartner extracts the acting partner and access token from a
// session, or reports ports.ErrSessionExpired when no verified identity with
// a live credential is attached.
func authenticatedPartner(s *session.Session, now time.Time) (*partner.Partner, string, error) {
	if !s.IsAuthenticated() || !s.HasCredential(now) {
		return nil, "", ports.ErrSessionExpired
	}

	return s.Partner(), s.AccessToken(), nil
}
