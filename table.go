package furnilytics

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Table is an ordered view over JSON row objects. Columns appear in
// first-appearance order across rows; keys within a single row are taken in
// sorted order so that the same payload always produces the same layout.
type Table struct {
	columns []string
	rows    []map[string]any

	// Meta is the diagnostic snapshot of the request that produced this
	// table.
	Meta Meta
}

// NewTable builds a Table from row objects.
func NewTable(rows []map[string]any) *Table {
	var columns []string
	seen := make(map[string]bool)

	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}

	return &Table{columns: columns, rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns a copy of the column names in display order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Rows returns the underlying row objects.
func (t *Table) Rows() []map[string]any { return t.rows }

// Cell returns the stringified value at (row, column), "" when absent.
func (t *Table) Cell(row int, column string) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	v, ok := t.rows[row][column]
	if !ok {
		return ""
	}
	return formatCell(v)
}

// String renders the table as aligned text, one row per line.
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return "(no rows)"
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col)
	}
	cells := make([][]string, len(t.rows))
	for r, row := range t.rows {
		cells[r] = make([]string, len(t.columns))
		for i, col := range t.columns {
			s := ""
			if v, ok := row[col]; ok {
				s = formatCell(v)
			}
			cells[r][i] = s
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}

	var b strings.Builder
	for i, col := range t.columns {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%-*s", widths[i], col)
	}
	b.WriteString("\n")

	for _, row := range cells {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WriteCSV writes the table as CSV with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	return writeCSV(w, t)
}

// formatCell renders a decoded JSON value for display. Scalars print
// directly; nested objects and arrays print as compact JSON.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(raw)
	}
}
