package table

import "strings"

// Columns is the flat table header, in column order
var Columns = []string{"itinerary", "path", "route", "documentName", "vertexName", "vertexID", "neighbourID"}

// Row is one visited vertex with the names of its ancestors
type Row struct {
	Itinerary    string
	Path         string
	Route        string
	DocumentName string
	VertexName   string
	VertexID     string
	NeighbourID  string
}

// Sentinel is the all-blank row terminating an itinerary group
var Sentinel = Row{}

// IsSentinel reports whether every field is blank. Whitespace-only fields
// count as blank; values themselves are never trimmed.
func (r Row) IsSentinel() bool {
	for _, f := range r.Fields() {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// Fields returns the row values in Columns order
func (r Row) Fields() []string {
	return []string{r.Itinerary, r.Path, r.Route, r.DocumentName, r.VertexName, r.VertexID, r.NeighbourID}
}

// RowFromFields builds a row from values in Columns order; missing values are blank
func RowFromFields(f []string) Row {
	get := func(i int) string {
		if i < len(f) {
			return f[i]
		}
		return ""
	}
	return Row{
		Itinerary:    get(0),
		Path:         get(1),
		Route:        get(2),
		DocumentName: get(3),
		VertexName:   get(4),
		VertexID:     get(5),
		NeighbourID:  get(6),
	}
}

// Group is the rows of one itinerary, without its sentinel
type Group struct {
	Name string
	Rows []Row
}

// Groups splits rows at sentinels. A trailing run with no sentinel still
// forms a group. The group name is the itinerary of its first row, so an
// itinerary without vertices yields a group with an empty name.
func Groups(rows []Row) []Group {
	var out []Group
	var cur []Row
	for _, r := range rows {
		if r.IsSentinel() {
			out = append(out, newGroup(cur))
			cur = nil
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		out = append(out, newGroup(cur))
	}
	return out
}

func newGroup(rows []Row) Group {
	g := Group{Rows: rows}
	if len(rows) > 0 {
		g.Name = rows[0].Itinerary
	}
	return g
}

// Names returns each group's itinerary name, index aligned with Groups(rows)
func Names(rows []Row) []string {
	groups := Groups(rows)
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

// CountSentinels returns the number of sentinel rows
func CountSentinels(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.IsSentinel() {
			n++
		}
	}
	return n
}
