package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Report kinds, used in export filenames.
const (
	KindInventory = "inventory"
	KindRequests  = "requests"
)

// Filename returns the download name for an exported report, for example
// "inventory-report-2026-08-30.json".
func Filename(kind string, now time.Time) string {
	return fmt.Sprintf("%s-report-%s.json", kind, now.Format("2006-01-02"))
}

// WriteJSON writes the report as a pretty-printed JSON document.
func WriteJSON(w io.Writer, report any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
