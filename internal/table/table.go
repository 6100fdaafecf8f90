// Package table turns a column definition and a row sequence into the
// header and body cells of an HTML table.
package table

// Column names a header and the record field shown under it.
type Column struct {
	Header   string
	Accessor string
}

// Record is one row, keyed by accessor.
type Record map[string]string

// Table is the input of Render.
type Table struct {
	Title   string
	Columns []Column
	Rows    []Record
}

// Rendered holds one header cell per column and, for every record, one body
// cell per column in column order.
type Rendered struct {
	Title   string
	Headers []string
	Body    [][]string
}

// Render derives the visible cells. A record without a given accessor yields
// an empty cell. Sorting, filtering and paging are not supported.
func Render(t Table) Rendered {
	out := Rendered{
		Title:   t.Title,
		Headers: make([]string, len(t.Columns)),
		Body:    make([][]string, len(t.Rows)),
	}
	for i, c := range t.Columns {
		out.Headers[i] = c.Header
	}
	for i, rec := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			cells[j] = rec[c.Accessor]
		}
		out.Body[i] = cells
	}
	return out
}
