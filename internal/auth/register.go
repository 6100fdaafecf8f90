package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/harrylevesque/storefront/internal/models"
	"github.com/harrylevesque/storefront/internal/utils"
)

// ErrRegistrationRejected is returned when the backend answered without a
// success status.
var ErrRegistrationRejected = errors.New("registration not accepted")

// RegisterForm carries the submitted registration fields. ImageName is the
// picked file's name, empty when none was chosen.
type RegisterForm struct {
	Name      string
	Email     string
	Password  string
	ImageName string
	Role      models.Role
}

// Register creates an account and returns the route to navigate to.
func (s *Service) Register(ctx context.Context, form RegisterForm) (string, error) {
	req := models.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     models.ParseRole(string(form.Role)),
	}
	if form.ImageName != "" {
		name := form.ImageName
		req.Image = &name
	}

	res, err := s.backend.Register(ctx, req)
	if err != nil {
		s.logger.Warnf("register for %q failed: %v", form.Email, err)
		return "", classify(err, http.StatusBadRequest, "Registration failed. The name or email may already be in use.")
	}
	if !res.Succeeded() {
		s.logger.Warnf("register for %q returned status %q", form.Email, res.Status)
		return "", utils.Wrap(http.StatusBadRequest, "Registration failed. The name or email may already be in use.", ErrRegistrationRejected)
	}
	s.logger.Infof("registered %q as %s", form.Email, req.Role)
	return RouteAfterRegister, nil
}
