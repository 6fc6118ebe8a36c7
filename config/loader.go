package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a value is left empty
const (
	DefaultReport          = "Turnback_Check_Output.xlsx"
	DefaultReportFormat    = "xlsx"
	DefaultFlatTable       = "XML_To_CSV_Output.csv"
	DefaultIntermediate    = "csv"
	DefaultCourseTable     = "course_xml.csv"
	DefaultItineraryColumn = "Itinerary"
	DefaultCourseIDColumn  = "CourseID"
	DefaultLogLevel        = "info"
)

// DefaultPaths are searched in order when LoadAppConfig gets no paths
var DefaultPaths = []string{"config.yml", "./configs/config.yml"}

// Config is the global application configuration
var Config = Default()

// Default returns a configuration with every default filled in
func Default() AppConfig {
	var cfg AppConfig
	cfg.applyDefaults()
	return cfg
}

// LoadAppConfig loads and validates the first readable file among paths
// (DefaultPaths if none are given) into Config.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads a single configuration file. A missing file yields the defaults.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return AppConfig{}, err
	}
	return Parse(data)
}

// Parse decodes, validates and defaults a YAML document
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Validate checks the struct tags of every section
func (c AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := v.Struct(c.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	// datasets are optional; if present validate each
	for _, d := range c.Datasets {
		if err := v.Struct(d); err != nil {
			return fmt.Errorf("dataset %q: %w", d.Name, err)
		}
	}
	return nil
}

func (c *AppConfig) applyDefaults() {
	if c.Input.CourseTable == "" {
		c.Input.CourseTable = DefaultCourseTable
	}
	c.Output = withOutputDefaults(c.Output)
	if c.Document.PruneTags == nil {
		c.Document.PruneTags = []string{"shuntings", "edges", "aspects"}
	}
	if c.Document.TagAliases == nil {
		c.Document.TagAliases = map[string]string{"stationvertex": "vertex"}
	}
	if c.Course.ItineraryColumn == "" {
		c.Course.ItineraryColumn = DefaultItineraryColumn
	}
	if c.Course.CourseIDColumn == "" {
		c.Course.CourseIDColumn = DefaultCourseIDColumn
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

func (c AppConfig) withInputDefaults(in InputConfig) InputConfig {
	if in.ItineraryXML == "" {
		in.ItineraryXML = c.Input.ItineraryXML
	}
	if in.CourseTable == "" {
		in.CourseTable = c.Input.CourseTable
	}
	return in
}

func withOutputDefaults(o OutputConfig) OutputConfig {
	if o.Report == "" {
		o.Report = DefaultReport
	}
	if o.ReportFormat == "" {
		o.ReportFormat = DefaultReportFormat
	}
	if o.FlatTable == "" {
		o.FlatTable = DefaultFlatTable
	}
	if o.Intermediate == "" {
		o.Intermediate = DefaultIntermediate
	}
	return o
}

// SelectDataset chooses a dataset by name; fallback to first; if none, use top-level Input/Output.
func SelectDataset(name string) (InputConfig, OutputConfig) {
	return Config.SelectDataset(name)
}

// SelectDataset is the method form of the package-level SelectDataset
func (c AppConfig) SelectDataset(name string) (InputConfig, OutputConfig) {
	if name != "" {
		for _, d := range c.Datasets {
			if d.Name == name {
				return c.withInputDefaults(d.Input), withOutputDefaults(d.Output)
			}
		}
	}
	if len(c.Datasets) > 0 {
		return c.withInputDefaults(c.Datasets[0].Input), withOutputDefaults(c.Datasets[0].Output)
	}
	return c.Input, c.Output
}
