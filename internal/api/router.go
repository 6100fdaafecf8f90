package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/harrylevesque/storefront/internal/utils"
	"github.com/harrylevesque/storefront/internal/views"
)

// NewRouter maps every route to exactly one screen or action. Unknown paths
// get the not-found screen.
func NewRouter(h *Handlers, logger *utils.Logger) *mux.Router {
	r := mux.NewRouter()
	logged := requestLogger(logger)
	r.Use(logged)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "OK"); err != nil {
			logger.Warnf("health: %v", err)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc("/", h.Screen(views.Home)).Methods(http.MethodGet)
	r.HandleFunc("/categories", h.Screen(views.Categories)).Methods(http.MethodGet)
	r.HandleFunc("/categories/", h.Screen(views.Categories)).Methods(http.MethodGet)
	r.HandleFunc("/products", h.Screen(views.Products)).Methods(http.MethodGet)
	r.HandleFunc("/products/view", h.Screen(views.ViewProduct)).Methods(http.MethodGet)
	r.HandleFunc("/products/instruments", h.Screen(views.ViewProductsByInstrument)).Methods(http.MethodGet)

	r.HandleFunc("/login", h.Screen(views.Login)).Methods(http.MethodGet)
	r.HandleFunc("/login", h.LoginSubmit).Methods(http.MethodPost)
	r.HandleFunc("/register", h.Screen(views.Register)).Methods(http.MethodGet)
	r.HandleFunc("/register", h.RegisterSubmit).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	r.HandleFunc("/authorize", h.Authorize).Methods(http.MethodPost)

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", views.Static())).Methods(http.MethodGet)

	// Middleware registered with Use does not run for unmatched routes.
	r.NotFoundHandler = logged(http.HandlerFunc(h.NotFound))
	return r
}
