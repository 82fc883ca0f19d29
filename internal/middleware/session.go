package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"catalog-console/internal/session"
	"catalog-console/pkg/catalogapi"
)

const sessionKey = "console.session"

// Session loads the browser session from its cookie, creating one when missing or expired.
// The session token is attached to the request context for outgoing API calls.
func (mw Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(mw.sessionConfig.CookieName)
		s, ok := mw.sessions.Get(id)
		if !ok {
			s = mw.sessions.New()
			mw.l.Debugf(c.Request.Context(), "middleware.Session: new session %s", s.ID())
		}

		mw.setSessionCookie(c, s)

		if tok := s.Token(); tok != nil {
			c.Request = c.Request.WithContext(catalogapi.WithToken(c.Request.Context(), tok))
		}
		c.Next()
	}
}

// RequireAuth sends visitors without a valid token back to the login page.
func (mw Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := GetSession(c)
		if s == nil || !s.Authenticated() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RotateSession moves the current session to a fresh id and re-issues the cookie.
// Call it once the privilege level of the session changes.
func (mw Middleware) RotateSession(c *gin.Context) *session.Session {
	s := GetSession(c)
	if s == nil {
		return nil
	}
	next := mw.sessions.Rotate(s)
	mw.l.Debugf(c.Request.Context(), "middleware.RotateSession: %s -> %s", s.ID(), next.ID())

	dropCookie(c, mw.sessionConfig.CookieName)
	mw.setSessionCookie(c, next)
	return next
}

// DropSession forgets the current session entirely.
func (mw Middleware) DropSession(c *gin.Context) {
	if s := GetSession(c); s != nil {
		s.SignOut()
		mw.sessions.Delete(s.ID())
	}
	dropCookie(c, mw.sessionConfig.CookieName)
	c.SetCookie(mw.sessionConfig.CookieName, "", -1, "/", "", mw.sessionConfig.Secure, true)
}

func (mw Middleware) setSessionCookie(c *gin.Context, s *session.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mw.sessionConfig.CookieName, s.ID(), int(mw.sessionConfig.TTL.Seconds()), "/", "", mw.sessionConfig.Secure, true)
	c.Set(sessionKey, s)
}

// dropCookie removes a pending Set-Cookie for name from the response.
func dropCookie(c *gin.Context, name string) {
	h := c.Writer.Header()
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, name+"=") {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
}

// GetSession returns the session loaded by Session, or nil.
func GetSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}
