package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/harrylevesque/storefront/internal/auth"
	"github.com/harrylevesque/storefront/internal/models"
	"github.com/harrylevesque/storefront/internal/utils"
	"github.com/harrylevesque/storefront/internal/views"
)

// maxUploadMemory bounds the in-memory part of a multipart registration form.
const maxUploadMemory = 8 << 20

// Handlers serves the screens and the form actions.
type Handlers struct {
	views  *views.Renderer
	auth   *auth.Service
	logger *utils.Logger
}

func NewHandlers(v *views.Renderer, a *auth.Service, logger *utils.Logger) *Handlers {
	return &Handlers{views: v, auth: a, logger: logger}
}

func (h *Handlers) page(r *http.Request) views.Page {
	return views.Page{
		Path:          r.URL.Path,
		Authenticated: h.auth.IsAuthenticated(r),
	}
}

func (h *Handlers) render(w http.ResponseWriter, status int, screen views.Screen, page views.Page) {
	if err := h.views.Render(w, status, screen, page); err != nil {
		h.logger.Errorf("%v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// Screen renders a screen with no form state.
func (h *Handlers) Screen(screen views.Screen) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, http.StatusOK, screen, h.page(r))
	}
}

// NotFound renders the fallback screen for unknown paths.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, views.NotFound, h.page(r))
}

// LoginSubmit runs the login flow. On failure the form is shown again with
// the error and the session is left as it was.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		page := h.page(r)
		page.Error = "The form could not be read."
		h.render(w, http.StatusBadRequest, views.Login, page)
		return
	}
	email := r.PostFormValue("email")
	next, err := h.auth.Login(email, r.PostFormValue("password"), r, w)
	if err != nil {
		page := h.page(r)
		page.Error = utils.Message(err)
		page.Login = views.LoginForm{Email: email}
		h.render(w, utils.StatusCode(err), views.Login, page)
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// RegisterSubmit runs the registration flow.
func (h *Handlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	// Urlencoded bodies are parsed too and report ErrNotMultipart.
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		page := h.page(r)
		page.Error = "The form could not be read."
		h.render(w, http.StatusBadRequest, views.Register, page)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}()

	form := auth.RegisterForm{
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
		ImageName: uploadedName(r, "image"),
		Role:      models.ParseRole(r.PostFormValue("role")),
	}
	next, err := h.auth.Register(r.Context(), form)
	if err != nil {
		page := h.page(r)
		page.Error = utils.Message(err)
		page.Register = views.RegisterForm{Name: form.Name, Email: form.Email, Role: form.Role}
		h.render(w, utils.StatusCode(err), views.Register, page)
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// uploadedName returns the client-side name of an uploaded file, or "" when
// the field is missing or empty.
func uploadedName(r *http.Request, field string) string {
	if r.MultipartForm == nil {
		return ""
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return ""
	}
	return files[0].Filename
}

// Logout drops the session token and returns home.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r, w); err != nil {
		h.logger.Errorf("logout: %v", err)
		http.Error(w, utils.Message(err), utils.StatusCode(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Authorize only records the submitted names; it sends no request.
func (h *Handlers) Authorize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	h.logger.Infof("authorize: category_name=%q", r.PostForm["category_name"])
	http.Redirect(w, r, localPath(r.PostFormValue("return_to")), http.StatusSeeOther)
}

// localPath keeps redirects on this site.
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}
