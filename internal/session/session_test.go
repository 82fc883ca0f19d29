package session_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"catalog-console/internal/authentication"
	"catalog-console/internal/notify"
	"catalog-console/internal/session"
	"catalog-console/pkg/log"
)

func TestStore(t *testing.T) {
	st := session.NewStore(10, time.Hour)

	s := st.New()
	if s.ID() == "" {
		t.Fatal("expected a session id")
	}

	got, ok := st.Get(s.ID())
	if !ok || got != s {
		t.Fatalf("expected to find session %s", s.ID())
	}

	if _, ok := st.Get(""); ok {
		t.Errorf("empty id must not resolve")
	}
	if _, ok := st.Get("unknown"); ok {
		t.Errorf("unknown id must not resolve")
	}

	st.Delete(s.ID())
	if _, ok := st.Get(s.ID()); ok {
		t.Errorf("expected session to be deleted")
	}
	if st.Len() != 0 {
		t.Errorf("expected empty store, got %d", st.Len())
	}
}

func TestStoreExpiry(t *testing.T) {
	st := session.NewStore(10, 50*time.Millisecond)
	s := st.New()

	time.Sleep(120 * time.Millisecond)
	if _, ok := st.Get(s.ID()); ok {
		t.Errorf("expected session to expire")
	}
}

func TestSignInOut(t *testing.T) {
	s := session.NewStore(1, time.Hour).New()
	if s.Authenticated() {
		t.Fatal("new session must not be authenticated")
	}

	s.SignIn(authentication.Session{
		UserID:   1,
		Username: "emilys",
		Token:    &oauth2.Token{AccessToken: "t", Expiry: time.Now().Add(time.Hour)},
	})
	if !s.Authenticated() || s.Username() != "emilys" || s.Token().AccessToken != "t" {
		t.Errorf("unexpected session after sign in")
	}

	s.SignIn(authentication.Session{Token: &oauth2.Token{AccessToken: "t", Expiry: time.Now().Add(-time.Minute)}})
	if s.Authenticated() {
		t.Errorf("expired token must not authenticate")
	}

	s.SignOut()
	if s.Authenticated() || s.Token() != nil {
		t.Errorf("expected signed out session")
	}
}

func TestRotate(t *testing.T) {
	st := session.NewStore(10, time.Hour)
	old := st.New()
	old.SignIn(authentication.Session{
		Username: "emilys",
		Token:    &oauth2.Token{AccessToken: "t", Expiry: time.Now().Add(time.Hour)},
	})
	old.Push(notify.Message{Text: "pending"})

	next := st.Rotate(old)

	if next.ID() == old.ID() {
		t.Fatal("rotated session kept its id")
	}
	if _, ok := st.Get(old.ID()); ok {
		t.Errorf("old id still resolves")
	}
	got, ok := st.Get(next.ID())
	if !ok || got != next {
		t.Fatalf("new id does not resolve")
	}
	if !next.Authenticated() || next.Username() != "emilys" {
		t.Errorf("user not carried over")
	}
	if msgs := next.Drain(); len(msgs) != 1 || msgs[0].Text != "pending" {
		t.Errorf("flashes not carried over: %+v", msgs)
	}
	if old.Authenticated() || old.Username() != "" || len(old.Drain()) != 0 {
		t.Errorf("old session still holds state")
	}
}

func TestLoadingFlag(t *testing.T) {
	s := session.NewStore(1, time.Hour).New()

	if !s.BeginAuth() {
		t.Fatal("first BeginAuth must succeed")
	}
	if !s.IsLoading() {
		t.Errorf("expected loading")
	}
	if s.BeginAuth() {
		t.Errorf("second BeginAuth must fail while loading")
	}
	s.EndAuth()
	if s.IsLoading() {
		t.Errorf("expected not loading")
	}
}

func TestTryAcquire(t *testing.T) {
	s := session.NewStore(1, time.Hour).New()

	release, ok := s.TryAcquire("submit")
	if !ok {
		t.Fatal("expected to acquire")
	}
	if !s.Busy("submit") {
		t.Errorf("expected busy")
	}
	if _, ok := s.TryAcquire("submit"); ok {
		t.Errorf("second acquire must fail")
	}
	if _, ok := s.TryAcquire("other"); !ok {
		t.Errorf("different keys are independent")
	}

	release()
	if s.Busy("submit") {
		t.Errorf("expected released")
	}
	if _, ok := s.TryAcquire("submit"); !ok {
		t.Errorf("expected to acquire after release")
	}
}

func TestFlashSink(t *testing.T) {
	s := session.NewStore(1, time.Hour).New()
	sink := session.NewFlashSink(s, log.NewNop(), 0)
	ctx := context.Background()

	sink.Success(ctx, notify.Message{Text: "saved"})
	sink.Error(ctx, notify.Message{Text: "failed", Duration: time.Second})

	msgs := s.Drain()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Kind != notify.KindSuccess || msgs[0].Duration != notify.DefaultDuration {
		t.Errorf("unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Kind != notify.KindError || msgs[1].Duration != time.Second {
		t.Errorf("unexpected second message: %+v", msgs[1])
	}
	if len(s.Drain()) != 0 {
		t.Errorf("drain must clear the queue")
	}
}
