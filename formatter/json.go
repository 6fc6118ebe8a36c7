package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/itinerary-turnback/converter"
)

// BuildJSON serializes a report to indented JSON
func BuildJSON(r *converter.Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
