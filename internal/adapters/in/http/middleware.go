package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"partnerconsole/internal/core/application/usecases/commands"
	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/domain/services"
	"partnerconsole/internal/pkg/errs"
)

const (
	sessionCookieName = "console_session"
	sessionContextKey = "console_session_id"

	sessionCookieMaxAge = 14 * 24 * time.Hour
)

// withSession guarantees every request carries a console session: a missing,
// malformed, or orphaned cookie gets a fresh anonymous session minted and
// set on the response.
func (s *Server) withSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, found := s.knownSessionID(c)
		if !found {
			fresh := session.NewSession()
			if err := s.sessionRepo.Save(c.Request().Context(), fresh); err != nil {
				s.logger.Error().Err(err).Msg("failed to create session")
				return c.JSON(http.StatusInternalServerError, fail("Something went wrong", nil))
			}

			sessionID = fresh.ID()
			c.SetCookie(&http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID.String(),
				Path:     "/",
				MaxAge:   int(sessionCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionContextKey, sessionID)
		return next(c)
	}
}

// knownSessionID extracts a session ID from the request cookie and confirms
// the session still exists in the store.
func (s *Server) knownSessionID(c echo.Context) (kernel.UUID, bool) {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return kernel.UUID{}, false
	}

	sessionID, err := kernel.UUIDFromString(cookie.Value)
	if err != nil {
		return kernel.UUID{}, false
	}

	if _, err = s.sessionRepo.Get(c.Request().Context(), sessionID); err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			s.logger.Error().Err(err).Msg("session lookup failed")
		}
		return kernel.UUID{}, false
	}

	return sessionID, true
}

// requireAccess enforces the access decision on guarded routes. A session
// whose credentials were never examined is restored inline first, so a
// returning partner with a live token is let straight through instead of
// being bounced to the sign-in page.
func (s *Server) requireAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		sessionID := sessionIDFromContext(c)

		consoleSession, err := s.sessionRepo.Get(ctx, sessionID)
		if err != nil {
			status, message := mapError(err)
			return c.JSON(status, fail(message, nil))
		}

		now := time.Now()
		if consoleSession.NeedsRestore(now, s.maxProfileAge) {
			cmd, cmdErr := commands.NewRestoreSessionCommand(sessionID)
			if cmdErr != nil {
				status, message := mapError(cmdErr)
				return c.JSON(status, fail(message, nil))
			}

			if err = s.restoreSessionHandler.Handle(ctx, cmd); err != nil {
				status, message := mapError(err)
				return c.JSON(status, fail(message, nil))
			}

			consoleSession, err = s.sessionRepo.Get(ctx, sessionID)
			if err != nil {
				status, message := mapError(err)
				return c.JSON(status, fail(message, nil))
			}
		}

		if s.accessGuard.Decide(consoleSession, now) != services.VerdictAllow {
			return c.JSON(http.StatusUnauthorized, fail(
				"Sign in to continue",
				map[string]string{
					"redirectTo": "/sign-in",
					"from":       c.Request().URL.Path,
				},
			))
		}

		return next(c)
	}
}

func sessionIDFromContext(c echo.Context) kernel.UUID {
	sessionID, _ := c.Get(sessionContextKey).(kernel.UUID)
	return sessionID
}
