// Package views renders the screens from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Renderer executes screen templates parsed once at start-up.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	for _, s := range Screens() {
		if tmpl.Lookup(s.template) == nil {
			return nil, fmt.Errorf("missing template %s for screen %s", s.template, s.Name)
		}
	}
	return &Renderer{templates: tmpl}, nil
}

// Render composes screen into page and writes it with the given status. The
// body is buffered so a template failure never leaves a half-written page.
func (v *Renderer) Render(w http.ResponseWriter, status int, screen Screen, page Page) error {
	page.Screen = screen.Name
	if page.Title == "" {
		page.Title = screen.Title
	}
	page.Nav = navLinks(page.Path, page.Authenticated)
	if screen.compose != nil {
		screen.compose(&page)
	}

	var buf bytes.Buffer
	if err := v.templates.ExecuteTemplate(&buf, screen.template, page); err != nil {
		return fmt.Errorf("render %s: %w", screen.Name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet and other assets.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
