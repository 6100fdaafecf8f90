package table

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/harrylevesque/storefront/internal/models"
)

func TestRenderShape(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		for _, m := range []int{1, 3} {
			cols := make([]Column, m)
			for j := range cols {
				cols[j] = Column{Header: fmt.Sprintf("H%d", j), Accessor: fmt.Sprintf("c%d", j)}
			}
			rows := make([]Record, n)
			for i := range rows {
				rec := Record{}
				for j := 0; j < m; j++ {
					rec[fmt.Sprintf("c%d", j)] = fmt.Sprintf("r%dc%d", i, j)
				}
				rows[i] = rec
			}

			out := Render(Table{Columns: cols, Rows: rows})
			if len(out.Headers) != m {
				t.Fatalf("n=%d m=%d: %d headers", n, m, len(out.Headers))
			}
			if len(out.Body) != n {
				t.Fatalf("n=%d m=%d: %d body rows", n, m, len(out.Body))
			}
			for i, row := range out.Body {
				if len(row) != m {
					t.Fatalf("row %d has %d cells, want %d", i, len(row), m)
				}
				for j, cell := range row {
					if want := rows[i][cols[j].Accessor]; cell != want {
						t.Errorf("cell (%d,%d) = %q, want %q", i, j, cell, want)
					}
				}
			}
		}
	}
}

func TestRenderFollowsColumnOrderAndMissingFields(t *testing.T) {
	out := Render(Table{
		Title:   "T",
		Columns: []Column{{Header: "B", Accessor: "b"}, {Header: "A", Accessor: "a"}, {Header: "Z", Accessor: "z"}},
		Rows:    []Record{{"a": "1", "b": "2"}},
	})
	if out.Title != "T" {
		t.Errorf("Title = %q", out.Title)
	}
	if !reflect.DeepEqual(out.Headers, []string{"B", "A", "Z"}) {
		t.Errorf("Headers = %v", out.Headers)
	}
	if !reflect.DeepEqual(out.Body[0], []string{"2", "1", ""}) {
		t.Errorf("Body[0] = %v", out.Body[0])
	}
}

func TestCategoryTable(t *testing.T) {
	out := Render(CategoryTable())
	want := [][]string{
		{"1", "None", "Instruments"},
		{"2", "None", "Electronics"},
	}
	if !reflect.DeepEqual(out.Headers, []string{"Id", "Image", "Name"}) {
		t.Errorf("Headers = %v", out.Headers)
	}
	if !reflect.DeepEqual(out.Body, want) {
		t.Errorf("Body = %v, want %v", out.Body, want)
	}
}

func TestProductTable(t *testing.T) {
	out := Render(ProductTable())
	want := []string{"1", "Fender stratocaster", "150.0", "Hyvä", "None", "Pekka", "[]", "Instruments"}
	if len(out.Headers) != 8 {
		t.Fatalf("expected 8 headers, got %v", out.Headers)
	}
	if len(out.Body) != 1 || !reflect.DeepEqual(out.Body[0], want) {
		t.Errorf("Body = %v, want [%v]", out.Body, want)
	}
}

func TestReviewList(t *testing.T) {
	got := reviewList([]models.Review{{UserName: "Pekka", Stars: 5, Description: "Soi"}, {UserName: "Liisa", Stars: 3, Description: "Ok"}})
	if want := "[Pekka (5): Soi, Liisa (3): Ok]"; got != want {
		t.Errorf("reviewList() = %q, want %q", got, want)
	}
}
