package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withCookies(cookies []*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestCookieStoreRoundTrip(t *testing.T) {
	store, err := NewCookieStore([]byte("test secret"), false)
	if err != nil {
		t.Fatalf("NewCookieStore() failed: %v", err)
	}

	if _, ok := store.Token(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("a fresh request should carry no token")
	}

	w := httptest.NewRecorder()
	if err := store.SetToken(w, httptest.NewRequest(http.MethodPost, "/login", nil), "tok-42"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	token, ok := store.Token(withCookies(cookies))
	if !ok || token != "tok-42" {
		t.Fatalf("Token() = %q, %v; want tok-42, true", token, ok)
	}

	w = httptest.NewRecorder()
	if err := store.Clear(w, withCookies(cookies)); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("Clear() should expire the cookie, got %+v", cleared)
	}
	if _, ok := store.Token(withCookies(cleared)); ok {
		t.Error("no token should be readable after Clear()")
	}
}

func TestCookieStoreRejectsForeignCookie(t *testing.T) {
	a, _ := NewCookieStore([]byte("secret a"), false)
	b, _ := NewCookieStore([]byte("secret b"), false)

	w := httptest.NewRecorder()
	if err := a.SetToken(w, httptest.NewRequest(http.MethodPost, "/", nil), "tok"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}
	if _, ok := b.Token(withCookies(w.Result().Cookies())); ok {
		t.Error("a cookie signed with a different secret must not be accepted")
	}

	// Writing over a foreign cookie still works.
	w2 := httptest.NewRecorder()
	if err := b.SetToken(w2, withCookies(w.Result().Cookies()), "mine"); err != nil {
		t.Fatalf("SetToken() over a foreign cookie failed: %v", err)
	}
	if tok, ok := b.Token(withCookies(w2.Result().Cookies())); !ok || tok != "mine" {
		t.Errorf("Token() = %q, %v", tok, ok)
	}
}

func TestCookieStoreEmptyToken(t *testing.T) {
	store, _ := NewCookieStore([]byte("s"), true)
	err := store.SetToken(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil), "")
	if !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
}

func TestNewCookieStoreEmptySecret(t *testing.T) {
	if _, err := NewCookieStore(nil, false); err == nil {
		t.Fatal("expected an error for an empty secret")
	}
}
