// internal/output/files.go
package output

import (
	"fmt"
	"os"
)

// PageName returns the file name of output page i (0-based).
func PageName(base string, i int) string {
	return fmt.Sprintf("%s%d.txt", base, i+1)
}

// WritePages writes each page buffer to its numbered file. Pages already
// written stay on disk when a later one fails; the error names the file.
func WritePages(base string, pages [][]byte) ([]string, error) {
	names := make([]string, 0, len(pages))
	for i, p := range pages {
		name := PageName(base, i)
		if err := os.WriteFile(name, p, 0o644); err != nil {
			return names, fmt.Errorf("write %s: %w", name, err)
		}
		names = append(names, name)
	}
	return names, nil
}
