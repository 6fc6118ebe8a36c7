package formatter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/theoremus-urban-solutions/itinerary-turnback/converter"
)

// SheetName is the report worksheet
const SheetName = "Turnback Check"

// BuildXLSX lays the report out on a new workbook
func BuildXLSX(r *converter.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]any, len(ReportColumns))
	for i, c := range ReportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	for i, row := range r.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := []any{row.Itinerary, row.Turnback, row.CourseID}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 20); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "C", "C", 40); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteXLSX saves the report as a spreadsheet at path
func WriteXLSX(path string, r *converter.Report) error {
	f, err := BuildXLSX(r)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
