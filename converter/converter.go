package converter

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/itinerary-turnback/config"
	"github.com/theoremus-urban-solutions/itinerary-turnback/course"
	"github.com/theoremus-urban-solutions/itinerary-turnback/itinerary"
	"github.com/theoremus-urban-solutions/itinerary-turnback/table"
	"github.com/theoremus-urban-solutions/itinerary-turnback/turnback"
)

// Converter coordinates the itinerary document, the flat table and the
// course table to produce a turnback report
type Converter struct {
	Opts     ConverterOptions
	Logger   *slog.Logger
	Warnings *WarningAggregator
	RunID    string
}

// Sources are the inputs of one run
type Sources struct {
	// Document is the itinerary XML
	Document io.Reader
	// Name identifies the document in logs and reports
	Name string
	// Courses is the course table; nil reports every turnback as not listed
	Courses *course.Table
}

// NewConverter creates a new converter instance with a fresh run ID
func NewConverter(opts ConverterOptions, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.NewString()
	return &Converter{
		Opts:     opts,
		Logger:   logger.With("component", "converter", "run", runID),
		Warnings: NewWarningAggregator(),
		RunID:    runID,
	}
}

// OptionsFromConfig maps configuration onto converter options
func OptionsFromConfig(cfg config.AppConfig, out config.OutputConfig) ConverterOptions {
	return ConverterOptions{
		Document: itinerary.LoadOptions{
			PruneTags:  cfg.Document.PruneTags,
			TagAliases: cfg.Document.TagAliases,
		},
		Course: course.LoadOptions{
			ItineraryColumn: cfg.Course.ItineraryColumn,
			CourseIDColumn:  cfg.Course.CourseIDColumn,
			Sheet:           cfg.Course.Sheet,
		},
		FlatTable:    out.FlatTable,
		Intermediate: out.Intermediate,
	}
}

// Run executes the whole pipeline: flatten, hand the flat table over,
// detect turnbacks and cross reference them with the course table.
func (c *Converter) Run(src Sources) (*Report, *FlattenResult, error) {
	start := time.Now()
	if _, err := c.FlatTableFormat(); err != nil {
		return nil, nil, err
	}
	res, err := c.Flatten(src.Document, src.Name)
	if err != nil {
		return nil, nil, err
	}
	if src.Courses != nil {
		for _, r := range src.Courses.Records {
			if r.CourseID == "" {
				c.Warnings.Add(WarningEmptyCourseID, fmt.Sprintf("line %d", r.Line))
			}
		}
	}
	rows, err := c.Handoff(res.Rows)
	if err != nil {
		return nil, res, err
	}
	report := c.Check(rows, src.Courses, src.Name)
	report.Stats.Vertices = res.Network.VertexCount()
	report.Stats.Elapsed = time.Since(start)
	return report, res, nil
}

// Flatten loads and resolves the document and extracts its flat table
func (c *Converter) Flatten(r io.Reader, name string) (*FlattenResult, error) {
	doc, err := itinerary.LoadDocument(r, c.Opts.Document)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	idx := itinerary.BuildIndex(doc)
	c.Logger.Debug("index built",
		"paths", idx.Count(itinerary.TagPath),
		"routes", idx.Count(itinerary.TagRoute),
		"vertices", idx.Count(itinerary.TagVertex),
	)
	for _, k := range idx.Duplicates() {
		c.Warnings.Add(WarningDuplicateDefinition, k.String())
	}

	net, err := itinerary.Flatten(doc, idx)
	if err != nil {
		return nil, fmt.Errorf("flatten %s: %w", name, err)
	}
	for _, it := range net.Itineraries {
		if vertexCount(it) == 0 {
			c.Warnings.Add(WarningEmptyItinerary, it.Name)
		}
	}
	rows := net.Rows()
	c.Logger.Info("document flattened",
		"itineraries", len(net.Itineraries),
		"rows", len(rows),
	)
	return &FlattenResult{Network: net, Rows: rows, Index: idx}, nil
}

// Handoff writes the flat table to the configured intermediate artifact and
// reads it back. With IntermediateNone the rows are returned unchanged.
func (c *Converter) Handoff(rows []table.Row) ([]table.Row, error) {
	format, err := c.FlatTableFormat()
	if err != nil {
		return nil, err
	}
	if format == "" {
		return rows, nil
	}
	if err := table.WriteFile(c.Opts.FlatTable, format, rows); err != nil {
		return nil, fmt.Errorf("write flat table: %w", err)
	}
	c.Logger.Info("flat table written", "path", c.Opts.FlatTable, "format", format)
	back, err := table.ReadFile(c.Opts.FlatTable, format)
	if err != nil {
		return nil, fmt.Errorf("read flat table: %w", err)
	}
	return back, nil
}

// FlatTableFormat returns the format the flat table is handed over in, or ""
// for an in-memory handoff. The format must match the FlatTable extension.
func (c *Converter) FlatTableFormat() (table.Format, error) {
	if c.Opts.Intermediate == IntermediateNone || c.Opts.Intermediate == "" || c.Opts.FlatTable == "" {
		return "", nil
	}
	return table.FormatFor(c.Opts.FlatTable, table.Format(c.Opts.Intermediate))
}

// Check runs turnback detection over rows and builds the report
func (c *Converter) Check(rows []table.Row, courses *course.Table, source string) *Report {
	start := time.Now()
	flags := turnback.Detect(rows, turnback.WithProgress(func(percent int) {
		c.Logger.Info("turnback check progress", "percent", percent)
	}))
	report := &Report{
		RunID:       c.RunID,
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Rows:        BuildRows(table.Names(rows), flags, courses, c.Warnings),
	}
	report.Stats.Rows = len(rows)
	report.Stats.Itineraries = len(report.Rows)
	for _, r := range report.Rows {
		if r.Turnback != "" {
			report.Stats.Turnbacks++
		}
		if r.CourseID == course.NotListed {
			report.Stats.NotListed++
		}
	}
	report.Stats.Elapsed = time.Since(start)
	c.Logger.Info("turnback check done",
		"itineraries", report.Stats.Itineraries,
		"turnbacks", report.Stats.Turnbacks,
		"notListed", report.Stats.NotListed,
	)
	return report
}

// BuildRows produces one report row per distinct non-empty itinerary name,
// in first-occurrence order. A name used by several groups is flagged if any
// of them is a turnback. names and flags are index aligned; w may be nil.
func BuildRows(names []string, flags []turnback.Flag, courses *course.Table, w *WarningAggregator) []ReportRow {
	var order []string
	merged := map[string]turnback.Flag{}
	for i, name := range names {
		if name == "" {
			continue
		}
		f := turnback.None
		if i < len(flags) {
			f = flags[i]
		}
		prev, seen := merged[name]
		if !seen {
			order = append(order, name)
		} else if w != nil {
			w.Add(WarningDuplicateItinerary, name)
		}
		if f.IsTurnback() || prev == turnback.Turnback {
			merged[name] = turnback.Turnback
		} else {
			merged[name] = turnback.None
		}
	}

	mergedFlags := make([]turnback.Flag, len(order))
	for i, name := range order {
		mergedFlags[i] = merged[name]
	}
	ids := course.CrossReference(courses, order, mergedFlags)

	out := make([]ReportRow, len(order))
	for i, name := range order {
		out[i] = ReportRow{Itinerary: name, Turnback: string(mergedFlags[i]), CourseID: ids[i]}
		if w != nil && ids[i] == course.NotListed {
			w.Add(WarningNotListed, name)
		}
	}
	return out
}

func vertexCount(it itinerary.Itinerary) int {
	n := 0
	for _, p := range it.Paths {
		for _, r := range p.Routes {
			n += len(r.Vertices)
		}
	}
	return n
}
