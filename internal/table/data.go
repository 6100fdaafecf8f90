package table

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/harrylevesque/storefront/internal/models"
)

var categoryColumns = []Column{
	{Header: "Id", Accessor: "id"},
	{Header: "Image", Accessor: "image"},
	{Header: "Name", Accessor: "name"},
}

var productColumns = []Column{
	{Header: "Id", Accessor: "id"},
	{Header: "Name", Accessor: "name"},
	{Header: "Price", Accessor: "price"},
	{Header: "Description", Accessor: "description"},
	{Header: "Images", Accessor: "images"},
	{Header: "User_name", Accessor: "user_name"},
	{Header: "Review", Accessor: "review"},
	{Header: "Categories", Accessor: "categories"},
}

// Mock catalog shown until the screens are wired to the products API.
var (
	mockCategories = []models.Category{
		{ID: 1, Name: "Instruments"},
		{ID: 2, Name: "Electronics"},
	}
	mockProducts = []models.Product{
		{
			ID:          1,
			Name:        "Fender stratocaster",
			Price:       150.0,
			Description: "Hyvä",
			UserName:    "Pekka",
			Categories:  []string{"Instruments"},
		},
	}
)

// orNone renders an unset optional field the way the API prints it.
func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func categoryRecord(c models.Category) Record {
	return Record{
		"id":    strconv.Itoa(c.ID),
		"image": orNone(c.Image),
		"name":  c.Name,
	}
}

func reviewList(reviews []models.Review) string {
	parts := make([]string, len(reviews))
	for i, r := range reviews {
		parts[i] = fmt.Sprintf("%s (%d): %s", r.UserName, r.Stars, r.Description)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func productRecord(p models.Product) Record {
	return Record{
		"id":          strconv.Itoa(p.ID),
		"name":        p.Name,
		"price":       strconv.FormatFloat(p.Price, 'f', 1, 64),
		"description": p.Description,
		"images":      orNone(p.Images),
		"user_name":   p.UserName,
		"review":      reviewList(p.Reviews),
		"categories":  strings.Join(p.Categories, ", "),
	}
}

var categoryTable = sync.OnceValue(func() Table {
	rows := make([]Record, len(mockCategories))
	for i, c := range mockCategories {
		rows[i] = categoryRecord(c)
	}
	return Table{Title: "Categories", Columns: categoryColumns, Rows: rows}
})

var productTable = sync.OnceValue(func() Table {
	rows := make([]Record, len(mockProducts))
	for i, p := range mockProducts {
		rows[i] = productRecord(p)
	}
	return Table{Title: "Products", Columns: productColumns, Rows: rows}
})

// CategoryTable returns the categories listing. The value is built once and
// must not be modified.
func CategoryTable() Table { return categoryTable() }

// ProductTable returns the products listing. The value is built once and
// must not be modified.
func ProductTable() Table { return productTable() }
