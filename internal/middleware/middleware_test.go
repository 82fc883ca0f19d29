package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"catalog-console/config"
	"catalog-console/internal/authentication"
	"catalog-console/internal/middleware"
	"catalog-console/internal/session"
	"catalog-console/pkg/catalogapi"
	"catalog-console/pkg/log"
)

type observed struct {
	method, path string
	status       int
}

type mockObserver struct{ calls []observed }

func (m *mockObserver) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.calls = append(m.calls, observed{method, path, status})
}

func setup() (*gin.Engine, *session.Store, *mockObserver) {
	gin.SetMode(gin.TestMode)
	store := session.NewStore(0, 0)
	obs := &mockObserver{}
	mw := middleware.New(log.NewNop(), store, config.SessionConfig{CookieName: "sid", TTL: time.Hour}, obs)

	r := gin.New()
	r.Use(mw.RequestID(), mw.Logger(), mw.Session())
	r.GET("/open", func(c *gin.Context) {
		tok := catalogapi.TokenFromContext(c.Request.Context())
		if tok != nil {
			c.String(http.StatusOK, tok.AccessToken)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/closed", mw.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetSession(c).Username())
	})
	return r, store, obs
}

func TestSessionCookie(t *testing.T) {
	r, store, _ := setup()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "sid" || cookies[0].Value == "" {
		t.Fatalf("cookies = %+v", cookies)
	}
	if store.Len() != 1 {
		t.Errorf("store len = %d", store.Len())
	}
	if !cookies[0].HttpOnly {
		t.Error("cookie should be HttpOnly")
	}

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if store.Len() != 1 {
		t.Errorf("existing cookie should reuse the session, len = %d", store.Len())
	}
}

func TestRequireAuth(t *testing.T) {
	r, store, _ := setup()

	t.Run("anonymous is redirected", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/closed", nil))

		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
			t.Errorf("code = %d location = %q", w.Code, w.Header().Get("Location"))
		}
	})

	t.Run("signed in passes with token in context", func(t *testing.T) {
		s := store.New()
		s.SignIn(authentication.Session{
			Username: "emilys",
			Token:    &oauth2.Token{AccessToken: "tok", Expiry: time.Now().Add(time.Hour)},
		})
		cookie := &http.Cookie{Name: "sid", Value: s.ID()}

		req := httptest.NewRequest(http.MethodGet, "/closed", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "emilys" {
			t.Errorf("code = %d body = %q", w.Code, w.Body.String())
		}

		req = httptest.NewRequest(http.MethodGet, "/open", nil)
		req.AddCookie(cookie)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Body.String() != "tok" {
			t.Errorf("token not attached, body = %q", w.Body.String())
		}
	})

	t.Run("expired token is redirected", func(t *testing.T) {
		s := store.New()
		s.SignIn(authentication.Session{
			Username: "old",
			Token:    &oauth2.Token{AccessToken: "tok", Expiry: time.Now().Add(-time.Minute)},
		})
		req := httptest.NewRequest(http.MethodGet, "/closed", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.ID()})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestRotateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewStore(0, 0)
	mw := middleware.New(log.NewNop(), store, config.SessionConfig{CookieName: "sid", TTL: time.Hour}, nil)

	r := gin.New()
	r.Use(mw.Session())
	r.POST("/rotate", func(c *gin.Context) {
		next := mw.RotateSession(c)
		if middleware.GetSession(c) != next {
			t.Error("context still holds the old session")
		}
		c.Status(http.StatusNoContent)
	})

	old := store.New()
	old.SignIn(authentication.Session{
		Username: "emilys",
		Token:    &oauth2.Token{AccessToken: "tok", Expiry: time.Now().Add(time.Hour)},
	})

	req := httptest.NewRequest(http.MethodPost, "/rotate", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: old.ID()})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected a single session cookie, got %d", len(cookies))
	}
	if cookies[0].Value == old.ID() {
		t.Fatal("cookie still carries the old id")
	}
	if _, ok := store.Get(old.ID()); ok {
		t.Error("old id still resolves")
	}
	next, ok := store.Get(cookies[0].Value)
	if !ok || next.Username() != "emilys" {
		t.Error("new id does not resolve to the signed-in user")
	}
}

func TestRequestIDAndObserver(t *testing.T) {
	r, _, obs := setup()

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc" {
		t.Errorf("request id = %q", got)
	}
	if len(obs.calls) != 1 || obs.calls[0] != (observed{"GET", "/open", 200}) {
		t.Errorf("observer calls = %+v", obs.calls)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if last := obs.calls[len(obs.calls)-1]; last.path != "unmatched" || last.status != 404 {
		t.Errorf("unmatched route = %+v", last)
	}
}
