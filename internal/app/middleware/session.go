package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "cdms_session"

// Context keys set by the session middleware. Handlers read the
// authenticated officer identity from the request context, never from
// package globals.
const (
	CtxSessionID   = "session_id"
	CtxOfficerID   = "officer_id"
	CtxUsername    = "username"
	CtxOfficerName = "officer_name"
)

var (
	jwtService     services.InterfaceJWTService
	sessionService services.InterfaceSessionService
	cookieMaxAge   int
)

// InitAuthMiddleware wires the session middleware to the service container.
func InitAuthMiddleware(c *container.ServiceContainer) {
	jwtService = c.GetService("jwt").(services.InterfaceJWTService)
	sessionService = c.GetService("session").(services.InterfaceSessionService)
	cookieMaxAge = c.GetConfig().SessionTTLHours * 3600
}

// SetSessionCookie issues the signed cookie for a session id.
func SetSessionCookie(c *gin.Context, sessionID string) error {
	token, err := jwtService.GenerateSessionToken(sessionID)
	if err != nil {
		return err
	}
	c.SetCookie(SessionCookieName, token, cookieMaxAge, "/", "", false, true)
	return nil
}

// EnsureSession resolves cookie -> signed token -> stored session, creating
// a fresh anonymous session when any step fails. Flash messages need a
// session before login, so this runs on every route.
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			sessionID string
			data      *services.SessionData
		)

		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			if id, err := jwtService.ParseSessionID(cookie); err == nil {
				if d, err := sessionService.Get(c.Request.Context(), id); err == nil {
					sessionID, data = id, d
				}
			}
		}

		if data == nil {
			id, err := sessionService.Create(c.Request.Context(), &services.SessionData{})
			if err != nil {
				// Session store down. Proceed without a session; protected
				// routes will bounce to the login page.
				c.Next()
				return
			}
			if err := SetSessionCookie(c, id); err != nil {
				c.Next()
				return
			}
			sessionID, data = id, &services.SessionData{}
		}

		c.Set(CtxSessionID, sessionID)
		if data.OfficerID != 0 {
			c.Set(CtxOfficerID, data.OfficerID)
			c.Set(CtxUsername, data.Username)
			c.Set(CtxOfficerName, data.OfficerName)
		}
		c.Next()
	}
}

// RequireOfficer redirects unauthenticated requests to the login page.
func RequireOfficer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CtxOfficerID); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
