package utils

import "math"

// Milestone is a row index at which a percentage of work is reached
type Milestone struct {
	Row     int
	Percent int
}

// Milestones returns the 25/50/75/100 percent row indexes for n rows.
// Indexes use round-half-to-even;
// the 100 percent mark equals n and is only reached once every row is done.
func Milestones(n int) []Milestone {
	if n <= 0 {
		return nil
	}
	f := float64(n)
	return []Milestone{
		{Row: int(math.RoundToEven(f / 4)), Percent: 25},
		{Row: int(math.RoundToEven(f / 2)), Percent: 50},
		{Row: int(math.RoundToEven(f / 4 * 3)), Percent: 75},
		{Row: n, Percent: 100},
	}
}
