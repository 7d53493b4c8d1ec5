package storage

import (
	"fmt"
	"os"

	furnilytics "github.com/furnilytics/furnilytics-go"
)

// ExportCSV writes a table to a CSV file at outputPath.
func ExportCSV(outputPath string, t *furnilytics.Table) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	if err := t.WriteCSV(file); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
