package views

import (
	"github.com/harrylevesque/storefront/internal/models"
	"github.com/harrylevesque/storefront/internal/table"
)

// NavLink is an entry of the navigation menu.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

func navLinks(path string, authenticated bool) []NavLink {
	links := []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Categories", Href: "/categories"},
		{Label: "Products", Href: "/products"},
	}
	if !authenticated {
		links = append(links,
			NavLink{Label: "Login", Href: "/login"},
			NavLink{Label: "Register", Href: "/register"},
		)
	}
	for i := range links {
		links[i].Active = links[i].Href == path || links[i].Href+"/" == path
	}
	return links
}

// LoginForm echoes the submitted email back after a failed attempt. The
// password is never echoed.
type LoginForm struct {
	Email string
}

// RegisterForm echoes the submitted registration fields.
type RegisterForm struct {
	Name  string
	Email string
	Role  models.Role
}

// RoleOption is one entry of the role selector.
type RoleOption struct {
	Value    models.Role
	Selected bool
}

// RoleOptions returns the selector entries with exactly one selected.
func (f RegisterForm) RoleOptions() []RoleOption {
	selected := models.ParseRole(string(f.Role))
	roles := models.Roles()
	out := make([]RoleOption, len(roles))
	for i, r := range roles {
		out[i] = RoleOption{Value: r, Selected: r == selected}
	}
	return out
}

// Page is the data every screen template receives.
type Page struct {
	Screen        string
	Title         string
	Path          string
	Nav           []NavLink
	Authenticated bool
	Error         string
	Status        string

	Categories table.Rendered
	Products   table.Rendered
	Lookup     LookupPanel
	Login      LoginForm
	Register   RegisterForm
}
