package converter

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Warning type constants
const (
	// Flattening warnings
	WarningDuplicateDefinition = "duplicate_definition"
	WarningEmptyItinerary      = "empty_itinerary"

	// Check warnings
	WarningDuplicateItinerary = "duplicate_itinerary"
	WarningNotListed          = "itinerary_not_listed"
	WarningEmptyCourseID      = "empty_course_id"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during a run and outputs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the number of occurrences of a warning type
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Types returns the recorded warning types, sorted
func (w *WarningAggregator) Types() []string {
	out := make([]string, 0, len(w.warnings))
	for k := range w.warnings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(logger *slog.Logger, source string) {
	for _, warningType := range w.Types() {
		logger.Warn(w.formatWarningMessage(warningType, source, w.warnings[warningType]),
			"warning", warningType,
			"count", w.warnings[warningType].count,
		)
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, source string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningDuplicateDefinition:
		description = "definitions sharing name, documentname and id"
		action = "Resolving references to the first definition"
	case WarningEmptyItinerary:
		description = "itineraries without vertices"
		action = "Leaving them out of the report"
	case WarningDuplicateItinerary:
		description = "itinerary names used by more than one itinerary"
		action = "Reporting the name once, flagged if any of them turns back"
	case WarningNotListed:
		description = "turnback itineraries missing from the course table"
		action = "Reporting them as not listed"
	case WarningEmptyCourseID:
		description = "course rows with an empty course id"
		action = "Keeping the empty id in the course list"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Document %s has %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, examplesStr)
}
