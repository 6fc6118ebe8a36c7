package turnback

import (
	"github.com/theoremus-urban-solutions/itinerary-turnback/table"
	"github.com/theoremus-urban-solutions/itinerary-turnback/utils"
)

// Flag is the per-itinerary detection result
type Flag string

const (
	Turnback Flag = "Turnback"
	None     Flag = ""
)

// IsTurnback reports whether f marks a turnback
func (f Flag) IsTurnback() bool { return f == Turnback }

// pair is a vertex identity qualified by its corridor
type pair struct {
	documentName string
	id           string
}

// Option configures Detect
type Option func(*options)

type options struct {
	progress func(percent int)
}

// WithProgress calls fn when 25, 50, 75 and 100 percent of the rows are scanned
func WithProgress(fn func(percent int)) Option {
	return func(o *options) { o.progress = fn }
}

// Detect returns one flag per itinerary group of rows, in group order.
// Groups are delimited by sentinel rows; rows after the last sentinel form
// a final group.
func Detect(rows []table.Row, opts ...Option) []Flag {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	milestones := utils.Milestones(len(rows))
	next := 0
	report := func(i int) {
		for next < len(milestones) && milestones[next].Row <= i {
			if o.progress != nil {
				o.progress(milestones[next].Percent)
			}
			next++
		}
	}

	var flags []Flag
	var visited, neighbours []pair
	pending := false
	for i, r := range rows {
		report(i)
		if r.IsSentinel() {
			flags = append(flags, evaluate(visited, neighbours))
			visited, neighbours = visited[:0], neighbours[:0]
			pending = false
			continue
		}
		visited = append(visited, pair{r.DocumentName, r.VertexID})
		neighbours = append(neighbours, pair{r.DocumentName, r.NeighbourID})
		pending = true
	}
	if pending {
		flags = append(flags, evaluate(visited, neighbours))
	}
	report(len(rows))
	return flags
}

// IsTurnback applies the detection rule to a single group
func IsTurnback(g table.Group) bool {
	visited := make([]pair, len(g.Rows))
	neighbours := make([]pair, len(g.Rows))
	for i, r := range g.Rows {
		visited[i] = pair{r.DocumentName, r.VertexID}
		neighbours[i] = pair{r.DocumentName, r.NeighbourID}
	}
	return evaluate(visited, neighbours).IsTurnback()
}

// evaluate searches visited[i:] for neighbours[i]. The suffix start is
// load-bearing: a matching vertex visited before the neighbour's own
// position is not a revisit.
func evaluate(visited, neighbours []pair) Flag {
	for i, n := range neighbours {
		for _, v := range visited[i:] {
			if v == n {
				return Turnback
			}
		}
	}
	return None
}
