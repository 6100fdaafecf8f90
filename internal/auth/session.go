package auth

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/harrylevesque/storefront/internal/crypto"
)

// TokenKey is the session key the auth token is kept under.
const TokenKey = "auth-token"

const (
	sessionName   = "storefront-session"
	sessionMaxAge = 7 * 24 * 60 * 60
)

// ErrEmptyToken is returned when asked to store an empty token.
var ErrEmptyToken = errors.New("empty auth token")

// TokenStore is the single read/write path for the auth token of the
// current browser session.
type TokenStore interface {
	Token(r *http.Request) (string, bool)
	SetToken(w http.ResponseWriter, r *http.Request, token string) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// CookieStore keeps the token in a signed and encrypted cookie.
type CookieStore struct {
	store sessions.Store
}

// NewCookieStore derives the cookie keys from secret. secure marks the
// cookie for HTTPS only.
func NewCookieStore(secret []byte, secure bool) (*CookieStore, error) {
	hashKey, blockKey, err := crypto.DeriveSessionKeys(secret)
	if err != nil {
		return nil, err
	}
	cs := sessions.NewCookieStore(hashKey, blockKey)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: cs}, nil
}

// Token returns the stored token. An absent or undecodable cookie reads as
// no token.
func (s *CookieStore) Token(r *http.Request) (string, bool) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return "", false
	}
	token, ok := session.Values[TokenKey].(string)
	return token, ok && token != ""
}

// SetToken stores token, replacing any previous session cookie.
func (s *CookieStore) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	// A stale or tampered cookie still yields a fresh session to write into.
	session, err := s.store.Get(r, sessionName)
	if session == nil {
		return err
	}
	session.Values[TokenKey] = token
	return session.Save(r, w)
}

// Clear removes the token and expires the cookie.
func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := s.store.Get(r, sessionName)
	if session == nil {
		return err
	}
	delete(session.Values, TokenKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
