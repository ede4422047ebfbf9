package renderer

import (
	"encoding/json"
	"io"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
)

// WriteJSON dumps the canonical course records as indented JSON, the same
// raw data file the calendar page embeds.
func WriteJSON(records []schedule.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
