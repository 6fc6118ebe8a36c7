package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/itinerary-turnback/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

// TestConfig_LoadFromFile tests loading the repository config.yml
func TestConfig_LoadFromFile(t *testing.T) {
	origConfig := config.Config
	defer func() { config.Config = origConfig }()

	if err := config.LoadAppConfig(filepath.Join("..", "config.yml")); err != nil {
		t.Fatalf("Failed to load config.yml: %v", err)
	}
	if config.Config.Output.ReportFormat != "xlsx" {
		t.Errorf("expected report format xlsx, got %s", config.Config.Output.ReportFormat)
	}
	if len(config.Config.Datasets) == 0 {
		t.Error("Config should have datasets")
	}
	t.Logf("✓ Loaded config with %d datasets", len(config.Config.Datasets))
}

// TestConfig_MissingFile tests error handling for a missing config
func TestConfig_MissingFile(t *testing.T) {
	origConfig := config.Config
	defer func() { config.Config = origConfig }()

	missing := filepath.Join(t.TempDir(), "config.yml")
	if err := config.LoadAppConfig(missing); err == nil {
		t.Error("Loading non-existent config should return error")
	}

	cfg, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load of missing file should return defaults, got %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	t.Logf("✓ Missing config handled")
}

// TestConfig_InvalidYAML tests error handling for invalid YAML
func TestConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "invalid: yaml: content: [[[")
	if _, err := config.Load(path); err == nil {
		t.Error("Loading invalid YAML should return error")
	}
}

// TestConfig_EmptyFile tests that an empty file yields the defaults
func TestConfig_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Empty config should load, got %v", err)
	}
	if cfg.Output.Report != config.DefaultReport {
		t.Errorf("expected report %s, got %s", config.DefaultReport, cfg.Output.Report)
	}
	if cfg.Output.Intermediate != config.DefaultIntermediate {
		t.Errorf("expected intermediate %s, got %s", config.DefaultIntermediate, cfg.Output.Intermediate)
	}
	if cfg.Input.CourseTable != config.DefaultCourseTable {
		t.Errorf("expected course table %s, got %s", config.DefaultCourseTable, cfg.Input.CourseTable)
	}
	if !reflect.DeepEqual(cfg.Document.PruneTags, []string{"shuntings", "edges", "aspects"}) {
		t.Errorf("unexpected prune tags: %v", cfg.Document.PruneTags)
	}
	if cfg.Document.TagAliases["stationvertex"] != "vertex" {
		t.Errorf("expected stationvertex alias, got %v", cfg.Document.TagAliases)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Logging.Level)
	}
}

// TestConfig_Validation tests that bad enum values are rejected
func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"report format", "output:\n  reportFormat: pdf\n", "ReportFormat"},
		{"intermediate", "output:\n  intermediate: parquet\n", "Intermediate"},
		{"log level", "logging:\n  level: verbose\n", "Level"},
		{"dataset without name", "datasets:\n  - input:\n      itineraryXML: a.xml\n", "Name"},
		{"dataset format", "datasets:\n  - name: x\n    output:\n      reportFormat: doc\n", "ReportFormat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error mentioning %s, got %v", tt.field, err)
			}
		})
	}
}

// TestConfig_SelectDatasetByName tests dataset selection by name
func TestConfig_SelectDatasetByName(t *testing.T) {
	origConfig := config.Config
	defer func() { config.Config = origConfig }()

	cfg, err := config.Parse([]byte(`
input:
  courseTable: shared_courses.csv
datasets:
  - name: north
    input:
      itineraryXML: north.xml
    output:
      report: north.xlsx
  - name: south
    input:
      itineraryXML: south.xml
      courseTable: south_courses.xlsx
    output:
      report: south.json
      reportFormat: json
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	config.Config = cfg

	in, out := config.SelectDataset("south")
	if in.ItineraryXML != "south.xml" || in.CourseTable != "south_courses.xlsx" {
		t.Errorf("unexpected input: %+v", in)
	}
	if out.ReportFormat != "json" {
		t.Errorf("expected json, got %s", out.ReportFormat)
	}

	// empty and unknown names fall back to the first dataset
	for _, name := range []string{"", "east"} {
		in, out = config.SelectDataset(name)
		if in.ItineraryXML != "north.xml" {
			t.Errorf("%q: expected north.xml, got %s", name, in.ItineraryXML)
		}
		if in.CourseTable != "shared_courses.csv" {
			t.Errorf("%q: expected top-level course table, got %s", name, in.CourseTable)
		}
		if out.FlatTable != config.DefaultFlatTable || out.ReportFormat != config.DefaultReportFormat {
			t.Errorf("%q: expected output defaults, got %+v", name, out)
		}
	}
	t.Logf("✓ Dataset selection works")
}

// TestConfig_SelectWithoutDatasets tests the top-level fallback
func TestConfig_SelectWithoutDatasets(t *testing.T) {
	cfg, err := config.Parse([]byte("input:\n  itineraryXML: only.xml\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	in, out := cfg.SelectDataset("anything")
	if in.ItineraryXML != "only.xml" {
		t.Errorf("expected only.xml, got %s", in.ItineraryXML)
	}
	if out.Report != config.DefaultReport {
		t.Errorf("expected default report, got %s", out.Report)
	}
}
