package course

import (
	"strings"

	"github.com/theoremus-urban-solutions/itinerary-turnback/turnback"
)

// NotListed is reported for a turnback itinerary absent from the course table
const NotListed = "Itinerary not listed in course.xml"

// Separator joins several course ids of one itinerary
const Separator = ", "

// CourseIDs returns the contiguous run of course ids starting at the first
// row of itinerary, joined with Separator. found is false when no row matches.
// Rows of the itinerary after a gap are not collected.
func (t *Table) CourseIDs(itinerary string) (ids string, found bool) {
	if t == nil {
		return "", false
	}
	start := -1
	for i, r := range t.Records {
		if r.Itinerary == itinerary {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}
	var out []string
	for _, r := range t.Records[start:] {
		if r.Itinerary != itinerary {
			break
		}
		out = append(out, r.CourseID)
	}
	return strings.Join(out, Separator), true
}

// CrossReference returns one entry per itinerary, index aligned with names
// and flags: the course ids of flagged itineraries, NotListed when a flagged
// itinerary has no course row, and empty otherwise.
func CrossReference(t *Table, names []string, flags []turnback.Flag) []string {
	cache := map[string]string{}
	out := make([]string, len(names))
	for i, name := range names {
		if i >= len(flags) || !flags[i].IsTurnback() || name == "" {
			continue
		}
		if v, ok := cache[name]; ok {
			out[i] = v
			continue
		}
		ids, found := t.CourseIDs(name)
		if !found {
			ids = NotListed
		}
		cache[name] = ids
		out[i] = ids
	}
	return out
}
