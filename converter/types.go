package converter

import (
	"time"

	"github.com/theoremus-urban-solutions/itinerary-turnback/course"
	"github.com/theoremus-urban-solutions/itinerary-turnback/itinerary"
	"github.com/theoremus-urban-solutions/itinerary-turnback/table"
)

// IntermediateNone hands the flat table over in memory
const IntermediateNone = "none"

// ConverterOptions contains all configuration needed for a turnback check.
// This struct has no dependencies on config files.
type ConverterOptions struct {
	// Document controls pruning and tag aliases while loading the itinerary XML.
	Document itinerary.LoadOptions

	// Course names the course table columns.
	Course course.LoadOptions

	// FlatTable is where the intermediate flat table is written and re-read.
	// Ignored when Intermediate is IntermediateNone.
	FlatTable string

	// Intermediate is "csv", "pb" or IntermediateNone.
	Intermediate string
}

// ReportRow is one itinerary of the final report
type ReportRow struct {
	Itinerary string `json:"Itinerary" xml:"Itinerary"`
	Turnback  string `json:"Turnback" xml:"Turnback"`
	CourseID  string `json:"CourseID" xml:"CourseID"`
}

// Stats summarises a run
type Stats struct {
	Itineraries int           `json:"itineraries"`
	Rows        int           `json:"rows"`
	Vertices    int           `json:"vertices"`
	Turnbacks   int           `json:"turnbacks"`
	NotListed   int           `json:"notListed"`
	Elapsed     time.Duration `json:"elapsedNs"`
}

// Report is the result of a turnback check
type Report struct {
	RunID       string      `json:"runId"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Source      string      `json:"source"`
	Rows        []ReportRow `json:"rows"`
	Stats       Stats       `json:"stats"`
}

// Turnbacks returns the rows flagged as turnbacks
func (r *Report) Turnbacks() []ReportRow {
	var out []ReportRow
	for _, row := range r.Rows {
		if row.Turnback != "" {
			out = append(out, row)
		}
	}
	return out
}

// FlattenResult is the output of the flattening stage
type FlattenResult struct {
	Network *itinerary.Network
	Rows    []table.Row
	Index   *itinerary.Index
}
