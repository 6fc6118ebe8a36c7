package utils

import (
	"fmt"
	"math"
	"time"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromTime formats t in UTC ISO8601
func Iso8601FromTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// SplitMinutes splits d into whole minutes and the remaining seconds
func SplitMinutes(d time.Duration) (int, float64) {
	secs := d.Seconds()
	minutes := math.Trunc(secs / 60)
	return int(minutes), secs - minutes*60
}

// FormatElapsed renders d as "M minutes and S.SS seconds"
func FormatElapsed(d time.Duration) string {
	m, s := SplitMinutes(d)
	return fmt.Sprintf("%d minutes and %.2f seconds", m, s)
}
