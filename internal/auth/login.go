package auth

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/harrylevesque/storefront/internal/backend"
	"github.com/harrylevesque/storefront/internal/models"
	"github.com/harrylevesque/storefront/internal/utils"
)

const (
	// RouteAfterLogin is where a successful login navigates to.
	RouteAfterLogin = "/products"
	// RouteAfterRegister is where a successful registration navigates to.
	RouteAfterRegister = "/login"
)

// ErrNoToken is returned when the backend accepted the login request but
// sent no auth token back.
var ErrNoToken = errors.New("login response carried no auth token")

// Backend is the part of the REST service the flows call.
type Backend interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
}

// Service runs the login, logout and registration flows.
type Service struct {
	backend Backend
	tokens  TokenStore
	logger  *utils.Logger
}

func NewService(b Backend, tokens TokenStore, logger *utils.Logger) *Service {
	if logger == nil {
		logger = utils.Discard()
	}
	return &Service{backend: b, tokens: tokens, logger: logger}
}

// Login sends one login request. On a reply carrying a token it stores the
// token and returns the route to navigate to. Any other outcome leaves the
// session untouched and returns a *utils.CustomError.
func (s *Service) Login(email, password string, r *http.Request, w http.ResponseWriter) (string, error) {
	res, err := s.backend.Login(r.Context(), models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.logger.Warnf("login for %q failed: %v", email, err)
		return "", classify(err, http.StatusUnauthorized, "Login failed. Check your email and password.")
	}
	if res.AuthToken == "" {
		s.logger.Warnf("login for %q returned no token", email)
		return "", utils.Wrap(http.StatusUnauthorized, "Login failed. Check your email and password.", ErrNoToken)
	}
	if err := s.tokens.SetToken(w, r, res.AuthToken); err != nil {
		return "", utils.Wrap(http.StatusInternalServerError, "Could not start a session.", err)
	}
	s.logger.Infof("login for %q succeeded", email)
	return RouteAfterLogin, nil
}

// Logout drops the stored token.
func (s *Service) Logout(r *http.Request, w http.ResponseWriter) error {
	if err := s.tokens.Clear(w, r); err != nil {
		return utils.Wrap(http.StatusInternalServerError, "Could not end the session.", err)
	}
	return nil
}

// IsAuthenticated reports whether the current session holds a token.
func (s *Service) IsAuthenticated(r *http.Request) bool {
	_, ok := s.tokens.Token(r)
	return ok
}

// classify maps a backend failure to a user-facing error. rejected is the
// status used when the backend refused the request itself.
func classify(err error, rejected int, msg string) error {
	var (
		se *backend.StatusError
		ne net.Error
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &ne) && ne.Timeout():
		return utils.Wrap(http.StatusGatewayTimeout, "The server took too long to answer. Try again.", err)
	case errors.As(err, &se) && se.Status < http.StatusInternalServerError:
		return utils.Wrap(rejected, msg, err)
	default:
		return utils.Wrap(http.StatusBadGateway, "The server could not be reached. Try again later.", err)
	}
}
