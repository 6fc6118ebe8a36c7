package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/itinerary-turnback/config"
	"github.com/theoremus-urban-solutions/itinerary-turnback/converter"
	"github.com/theoremus-urban-solutions/itinerary-turnback/course"
	"github.com/theoremus-urban-solutions/itinerary-turnback/formatter"
	"github.com/theoremus-urban-solutions/itinerary-turnback/table"
	"github.com/theoremus-urban-solutions/itinerary-turnback/utils"
)

// overrides are command line values that replace the selected dataset's
type overrides struct {
	itineraryXML string
	courseTable  string
	report       string
	reportFormat string
	flatTable    string
	intermediate string
	resolvedXML  string
}

func (o overrides) apply(in config.InputConfig, out config.OutputConfig) (config.InputConfig, config.OutputConfig) {
	if o.itineraryXML != "" {
		in.ItineraryXML = o.itineraryXML
	}
	if o.courseTable != "" {
		in.CourseTable = o.courseTable
	}
	if o.report != "" {
		out.Report = o.report
		if o.reportFormat == "" {
			out.ReportFormat = formatter.FormatForPath(o.report)
		}
	}
	if o.reportFormat != "" {
		out.ReportFormat = o.reportFormat
	}
	if o.flatTable != "" {
		out.FlatTable = o.flatTable
		if o.intermediate == "" && out.Intermediate != converter.IntermediateNone {
			out.Intermediate = string(table.FormatForPath(o.flatTable))
		}
	}
	if o.intermediate != "" {
		out.Intermediate = o.intermediate
	}
	if o.resolvedXML != "" {
		out.ResolvedXML = o.resolvedXML
	}
	return in, out
}

// validate rejects values the config validator would reject
func (o overrides) validate() error {
	switch o.intermediate {
	case "", string(table.FormatCSV), string(table.FormatSnapshot), converter.IntermediateNone:
	default:
		return fmt.Errorf("invalid --intermediate %q: want csv, pb or none", o.intermediate)
	}
	switch o.reportFormat {
	case "", formatter.FormatXLSX, formatter.FormatCSV, formatter.FormatJSON, formatter.FormatXML:
	default:
		return fmt.Errorf("invalid --format %q: want xlsx, csv, json or xml", o.reportFormat)
	}
	return nil
}

func newRunCmd(root *rootOptions) *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Flatten the itinerary XML, detect turnbacks and write the report",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return o.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := o.apply(config.SelectDataset(root.dataset))
			return runAll(in, out)
		},
	}

	cmd.Flags().StringVar(&o.itineraryXML, "xml", "", "Itinerary XML file, - for stdin (overrides config)")
	cmd.Flags().StringVar(&o.courseTable, "courses", "", "Course table CSV or XLSX (overrides config)")
	cmd.Flags().StringVar(&o.report, "report", "", "Report output file (overrides config)")
	cmd.Flags().StringVar(&o.reportFormat, "format", "", "Report format: xlsx|csv|json|xml")
	cmd.Flags().StringVar(&o.flatTable, "flat-table", "", "Intermediate flat table file (overrides config)")
	cmd.Flags().StringVar(&o.intermediate, "intermediate", "", "Intermediate artifact: csv|pb|none")
	cmd.Flags().StringVar(&o.resolvedXML, "resolved-xml", "", "Also write the resolved itinerary tree to this file")
	return cmd
}

func newFlattenCmd(root *rootOptions) *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Flatten the itinerary XML into the flat table",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if o.intermediate == converter.IntermediateNone {
				return fmt.Errorf("flatten needs a flat table format: csv or pb")
			}
			return o.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := o.apply(config.SelectDataset(root.dataset))
			return runFlatten(in, out)
		},
	}

	cmd.Flags().StringVar(&o.itineraryXML, "xml", "", "Itinerary XML file, - for stdin (overrides config)")
	cmd.Flags().StringVar(&o.flatTable, "flat-table", "", "Flat table output file (overrides config)")
	cmd.Flags().StringVar(&o.intermediate, "intermediate", "", "Flat table format: csv|pb (default: from extension)")
	cmd.Flags().StringVar(&o.resolvedXML, "resolved-xml", "", "Also write the resolved itinerary tree to this file")
	return cmd
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Detect turnbacks in a flat table and write the report",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return o.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := o.apply(config.SelectDataset(root.dataset))
			return runCheck(in, out)
		},
	}

	cmd.Flags().StringVar(&o.flatTable, "flat-table", "", "Flat table to check, csv or pb (overrides config)")
	cmd.Flags().StringVar(&o.courseTable, "courses", "", "Course table CSV or XLSX (overrides config)")
	cmd.Flags().StringVar(&o.report, "report", "", "Report output file (overrides config)")
	cmd.Flags().StringVar(&o.reportFormat, "format", "", "Report format: xlsx|csv|json|xml")
	return cmd
}

func runAll(in config.InputConfig, out config.OutputConfig) error {
	start := time.Now()
	f := newFetcher()
	conv := converter.NewConverter(converter.OptionsFromConfig(config.Config, out), slog.Default())
	conv.Logger.Info("turnback check started", "xml", in.ItineraryXML, "courses", in.CourseTable)

	courses, err := loadCourses(f, in.CourseTable)
	if err != nil {
		return err
	}
	doc, err := f.open(in.ItineraryXML)
	if err != nil {
		return err
	}
	defer doc.Close()

	report, res, err := conv.Run(converter.Sources{Document: doc, Name: in.ItineraryXML, Courses: courses})
	if err != nil {
		return err
	}
	if out.ResolvedXML != "" {
		if err := formatter.WriteResolvedXMLFile(out.ResolvedXML, res.Network); err != nil {
			return fmt.Errorf("write resolved xml: %w", err)
		}
	}
	if err := formatter.WriteReport(out.Report, out.ReportFormat, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	conv.Warnings.LogAll(conv.Logger, in.ItineraryXML)
	conv.Logger.Info("report written",
		"path", out.Report,
		"format", out.ReportFormat,
		"elapsed", utils.FormatElapsed(time.Since(start)),
	)
	return nil
}

func runFlatten(in config.InputConfig, out config.OutputConfig) error {
	start := time.Now()
	f := newFetcher()
	requested := table.Format(out.Intermediate)
	if out.Intermediate == converter.IntermediateNone {
		requested = ""
	}
	format, err := table.FormatFor(out.FlatTable, requested)
	if err != nil {
		return err
	}
	out.Intermediate = string(format)
	conv := converter.NewConverter(converter.OptionsFromConfig(config.Config, out), slog.Default())

	doc, err := f.open(in.ItineraryXML)
	if err != nil {
		return err
	}
	defer doc.Close()

	res, err := conv.Flatten(doc, in.ItineraryXML)
	if err != nil {
		return err
	}
	if err := table.WriteFile(out.FlatTable, format, res.Rows); err != nil {
		return fmt.Errorf("write flat table: %w", err)
	}
	if out.ResolvedXML != "" {
		if err := formatter.WriteResolvedXMLFile(out.ResolvedXML, res.Network); err != nil {
			return fmt.Errorf("write resolved xml: %w", err)
		}
	}
	conv.Warnings.LogAll(conv.Logger, in.ItineraryXML)
	conv.Logger.Info("flat table written",
		"path", out.FlatTable,
		"rows", len(res.Rows),
		"elapsed", utils.FormatElapsed(time.Since(start)),
	)
	return nil
}

func runCheck(in config.InputConfig, out config.OutputConfig) error {
	start := time.Now()
	f := newFetcher()
	conv := converter.NewConverter(converter.OptionsFromConfig(config.Config, out), slog.Default())

	flatPath, err := f.localPath(out.FlatTable)
	if err != nil {
		return err
	}
	rows, err := table.ReadFile(flatPath, table.FormatForPath(flatPath))
	if err != nil {
		return fmt.Errorf("read flat table: %w", err)
	}
	courses, err := loadCourses(f, in.CourseTable)
	if err != nil {
		return err
	}

	report := conv.Check(rows, courses, flatPath)
	if err := formatter.WriteReport(out.Report, out.ReportFormat, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	conv.Warnings.LogAll(conv.Logger, flatPath)
	conv.Logger.Info("report written",
		"path", out.Report,
		"elapsed", utils.FormatElapsed(time.Since(start)),
	)
	return nil
}

func loadCourses(f *fetcher, path string) (*course.Table, error) {
	p, err := f.localPath(path)
	if err != nil {
		return nil, fmt.Errorf("course table: %w", err)
	}
	cfg := config.Config.Course
	courses, err := course.LoadFile(p, course.LoadOptions{
		ItineraryColumn: cfg.ItineraryColumn,
		CourseIDColumn:  cfg.CourseIDColumn,
		Sheet:           cfg.Sheet,
	})
	if err != nil {
		return nil, fmt.Errorf("course table: %w", err)
	}
	return courses, nil
}
