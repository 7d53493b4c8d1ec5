package storage

import (
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	furnilytics "github.com/furnilytics/furnilytics-go"
)

const markdownHeader = `# {{.Title}}

Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}
Rows: {{.Rows}}

`

// ExportMarkdown creates a Markdown report for a table at outputPath.
func ExportMarkdown(outputPath, title string, t *furnilytics.Table) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create markdown file: %w", err)
	}
	defer file.Close()

	tmpl := template.Must(template.New("report").Parse(markdownHeader))
	data := struct {
		Title       string
		GeneratedAt time.Time
		Rows        int
	}{
		Title:       title,
		GeneratedAt: time.Now(),
		Rows:        t.Len(),
	}
	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	columns := t.Columns()
	if len(columns) == 0 {
		return nil
	}

	fmt.Fprintf(file, "| %s |\n", strings.Join(columns, " | "))
	seps := make([]string, len(columns))
	for i := range seps {
		seps[i] = "---"
	}
	fmt.Fprintf(file, "| %s |\n", strings.Join(seps, " | "))

	for i := 0; i < t.Len(); i++ {
		cells := make([]string, len(columns))
		for j, col := range columns {
			cells[j] = escapeMarkdownCell(t.Cell(i, col))
		}
		fmt.Fprintf(file, "| %s |\n", strings.Join(cells, " | "))
	}

	return nil
}

// escapeMarkdownCell keeps cell contents from breaking the table layout.
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
