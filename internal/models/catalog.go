package models

// Category is a product category as listed on the categories screen.
type Category struct {
	ID    int
	Image string
	Name  string
}

// Review is a user review attached to a product.
type Review struct {
	UserName    string
	Stars       int
	Description string
}

// Product is a catalog entry as listed on the products screens.
type Product struct {
	ID          int
	Name        string
	Price       float64
	Description string
	Images      string
	UserName    string
	Reviews     []Review
	Categories  []string
}
