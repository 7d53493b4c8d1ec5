// Package storage exports fetched dataset tables to local files: CSV,
// Markdown reports, and SQLite databases.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	furnilytics "github.com/furnilytics/furnilytics-go"
)

// ExportSQLite writes a table into a SQLite database at dbPath, creating
// the file and the target table as needed. All columns are stored as TEXT;
// nested objects and arrays arrive as compact JSON strings. Existing rows
// in the target table are kept — each export appends.
func ExportSQLite(dbPath, tableName string, t *furnilytics.Table) error {
	if t.Len() == 0 {
		return fmt.Errorf("nothing to export: table has no rows")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	columns := t.Columns()
	safeTable := sanitizeIdentifier(tableName)

	defs := make([]string, len(columns))
	names := make([]string, len(columns))
	holders := make([]string, len(columns))
	for i, col := range columns {
		names[i] = `"` + sanitizeIdentifier(col) + `"`
		defs[i] = names[i] + " TEXT"
		holders[i] = "?"
	}

	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (%s)`,
		safeTable, strings.Join(defs, ", "))
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	insert := fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES (%s)`,
		safeTable, strings.Join(names, ", "), strings.Join(holders, ", "))
	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	values := make([]any, len(columns))
	for i := 0; i < t.Len(); i++ {
		for j, col := range columns {
			values[j] = t.Cell(i, col)
		}
		if _, err := stmt.Exec(values...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// sanitizeIdentifier maps an arbitrary string onto a safe SQL identifier.
// Dataset ids contain slashes, so "macro/prices/hicp" becomes
// "macro_prices_hicp".
func sanitizeIdentifier(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	s := b.String()
	if s == "" {
		return "export"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "t_" + s
	}
	return s
}
