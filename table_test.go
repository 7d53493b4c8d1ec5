package furnilytics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableColumnOrder(t *testing.T) {
	rows := []map[string]any{
		{"date": "2020-01", "value": 1.0},
		{"date": "2020-02", "value": 2.0, "flag": "revised"},
	}

	table := NewTable(rows)

	// First-appearance order, sorted within each row: date and value from
	// row one, flag appended when row two introduces it.
	assert.Equal(t, []string{"date", "value", "flag"}, table.Columns())
	assert.Equal(t, 2, table.Len())
}

func TestNewTableDeterministic(t *testing.T) {
	rows := []map[string]any{
		{"b": 1.0, "a": 2.0, "c": 3.0},
	}

	first := NewTable(rows).Columns()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, NewTable(rows).Columns())
	}
	assert.Equal(t, []string{"a", "b", "c"}, first)
}

func TestTableCell(t *testing.T) {
	table := NewTable([]map[string]any{
		{
			"s":    "text",
			"f":    1.5,
			"i":    float64(42),
			"b":    true,
			"nil":  nil,
			"obj":  map[string]any{"k": "v"},
			"list": []any{1.0, 2.0},
		},
	})

	assert.Equal(t, "text", table.Cell(0, "s"))
	assert.Equal(t, "1.5", table.Cell(0, "f"))
	assert.Equal(t, "42", table.Cell(0, "i"))
	assert.Equal(t, "true", table.Cell(0, "b"))
	assert.Equal(t, "", table.Cell(0, "nil"))
	assert.Equal(t, `{"k":"v"}`, table.Cell(0, "obj"))
	assert.Equal(t, "[1,2]", table.Cell(0, "list"))
	assert.Equal(t, "", table.Cell(0, "missing"))
	assert.Equal(t, "", table.Cell(99, "s"))
}

func TestTableString(t *testing.T) {
	table := NewTable([]map[string]any{
		{"id": "a", "value": 1.0},
		{"id": "long-identifier", "value": 2.5},
	})

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "id")
	assert.Contains(t, lines[0], "value")
	assert.Contains(t, lines[2], "long-identifier")

	// Header and rows align on the widest cell.
	assert.Equal(t, len(lines[0]), len(lines[1]))
	assert.Equal(t, len(lines[0]), len(lines[2]))
}

func TestTableStringEmpty(t *testing.T) {
	assert.Equal(t, "(no rows)", NewTable(nil).String())
}

func TestTableWriteCSV(t *testing.T) {
	table := NewTable([]map[string]any{
		{"id": "a", "note": `has "quotes", and commas`},
		{"id": "b", "note": "plain"},
	})

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	got := buf.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,note", lines[0])
	assert.Equal(t, `a,"has ""quotes"", and commas"`, lines[1])
	assert.Equal(t, "b,plain", lines[2])
}
