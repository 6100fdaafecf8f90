package views

import (
	"github.com/harrylevesque/storefront/internal/models"
	"github.com/harrylevesque/storefront/internal/table"
)

// Screen is one routed page: a template plus the panels it fills in.
type Screen struct {
	Name     string
	Title    string
	template string
	compose  func(*Page)
}

// LookupPanel switches the parts of the product lookup panel. Screens share
// the panel and differ only in which links and forms it shows.
type LookupPanel struct {
	AllProductsLink bool
	UsersLink       bool
	CategoriesLink  bool
	ProductForm     bool
}

var (
	Home = Screen{Name: "home", Title: "Home", template: "home.gohtml"}

	Categories = Screen{
		Name:     "categories",
		Title:    "Categories",
		template: "categories.gohtml",
		compose: func(p *Page) {
			p.Categories = table.Render(table.CategoryTable())
		},
	}

	Products = Screen{
		Name:     "products",
		Title:    "Products",
		template: "products.gohtml",
		compose: func(p *Page) {
			p.Products = table.Render(table.ProductTable())
			p.Lookup = LookupPanel{UsersLink: true, CategoriesLink: true, ProductForm: true}
		},
	}

	ViewProduct = Screen{
		Name:     "view-product",
		Title:    "Product",
		template: "view_product.gohtml",
		compose: func(p *Page) {
			p.Products = table.Render(table.ProductTable())
			p.Lookup = LookupPanel{AllProductsLink: true}
		},
	}

	ViewProductsByInstrument = Screen{
		Name:     "products-by-instrument",
		Title:    "Instruments",
		template: "products_by_instrument.gohtml",
		compose: func(p *Page) {
			p.Products = table.Render(table.ProductTable())
			p.Lookup = LookupPanel{AllProductsLink: true}
		},
	}

	Login = Screen{Name: "login", Title: "Login", template: "login.gohtml"}

	Register = Screen{
		Name:     "register",
		Title:    "Register",
		template: "register.gohtml",
		compose: func(p *Page) {
			p.Register.Role = models.ParseRole(string(p.Register.Role))
		},
	}

	NotFound = Screen{Name: "not-found", Title: "Not found", template: "not_found.gohtml"}
)

// Screens lists every screen, used to check the template set is complete.
func Screens() []Screen {
	return []Screen{Home, Categories, Products, ViewProduct, ViewProductsByInstrument, Login, Register, NotFound}
}
