package formatter

import (
	"encoding/csv"
	"io"

	"github.com/theoremus-urban-solutions/itinerary-turnback/converter"
)

// ReportColumns is the header of every tabular report
var ReportColumns = []string{"Itinerary", "Turnback", "CourseID"}

// WriteCSV writes the report rows with a header
func WriteCSV(w io.Writer, r *converter.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportColumns); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if err := cw.Write([]string{row.Itinerary, row.Turnback, row.CourseID}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
