package furnilytics

import (
	"encoding/csv"
	"fmt"
	"io"
)

// writeCSV renders a table as CSV: one header row, then stringified cells.
func writeCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, col := range t.columns {
			record[i] = ""
			if v, ok := row[col]; ok {
				record[i] = formatCell(v)
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
