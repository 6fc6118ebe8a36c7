package config

// InputConfig locates the files a run reads
type InputConfig struct {
	ItineraryXML string `yaml:"itineraryXML" validate:"omitempty"`
	CourseTable  string `yaml:"courseTable" validate:"omitempty"`
}

// OutputConfig locates the files a run writes
type OutputConfig struct {
	Report       string `yaml:"report" validate:"omitempty"`
	ReportFormat string `yaml:"reportFormat" validate:"omitempty,oneof=xlsx csv json xml"`
	FlatTable    string `yaml:"flatTable" validate:"omitempty"`
	Intermediate string `yaml:"intermediate" validate:"omitempty,oneof=csv pb none"` // csv|pb|none
	ResolvedXML  string `yaml:"resolvedXML" validate:"omitempty"`
}

// DocumentConfig contains itinerary document preprocessing rules
type DocumentConfig struct {
	PruneTags  []string          `yaml:"pruneTags"`
	TagAliases map[string]string `yaml:"tagAliases"`
}

// CourseConfig names the course table columns and spreadsheet
type CourseConfig struct {
	ItineraryColumn string `yaml:"itineraryColumn"`
	CourseIDColumn  string `yaml:"courseIDColumn"`
	Sheet           string `yaml:"sheet"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Dataset represents one named set of inputs and outputs
type Dataset struct {
	Name   string       `yaml:"name" validate:"required"`
	Input  InputConfig  `yaml:"input" validate:"required"`
	Output OutputConfig `yaml:"output" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Course   CourseConfig   `yaml:"course"`
	Logging  LoggingConfig  `yaml:"logging"`
	Datasets []Dataset      `yaml:"datasets"`
}
