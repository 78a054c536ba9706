package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/vscroll/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/vscroll-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("vscroll-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the dataset as an ordered HTML list.
func ExportHTML(d *model.Dataset) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<title>vscroll entries</title>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>Entries (%d)</h1>\n", d.Len())
	b.WriteString("<ol>\n")

	for _, e := range d.Entries {
		fmt.Fprintf(&b,
			"    <li data-id=\"%s\" data-created=\"%d\">%s</li>\n",
			html.EscapeString(e.ID),
			e.CreatedAt.Unix(),
			html.EscapeString(e.Content),
		)
	}

	b.WriteString("</ol>\n</body>\n</html>\n")

	return b.String()
}
