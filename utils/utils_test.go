package utils

import (
	"testing"
	"time"
)

func TestSplitMinutes(t *testing.T) {
	tests := []struct {
		name        string
		in          time.Duration
		wantMinutes int
		wantSeconds float64
	}{
		{"zero", 0, 0, 0},
		{"under a minute", 42 * time.Second, 0, 42},
		{"exact minutes", 3 * time.Minute, 3, 0},
		{"mixed", 2*time.Minute + 1500*time.Millisecond, 2, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, s := SplitMinutes(tt.in)
			if m != tt.wantMinutes || s != tt.wantSeconds {
				t.Errorf("expected %d/%v, got %d/%v", tt.wantMinutes, tt.wantSeconds, m, s)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	got := FormatElapsed(61*time.Second + 250*time.Millisecond)
	if got != "1 minutes and 1.25 seconds" {
		t.Errorf("unexpected format: %q", got)
	}
}

func TestIso8601FromTime(t *testing.T) {
	ts := time.Date(2023, 12, 15, 8, 0, 0, 0, time.FixedZone("EST", -5*3600))
	if got := Iso8601FromTime(ts); got != "2023-12-15T13:00:00Z" {
		t.Errorf("expected UTC timestamp, got %s", got)
	}
}

func TestMilestones(t *testing.T) {
	if m := Milestones(0); m != nil {
		t.Errorf("expected no milestones for empty input, got %v", m)
	}

	got := Milestones(10)
	want := []Milestone{{2, 25}, {5, 50}, {8, 75}, {10, 100}}
	if len(got) != len(want) {
		t.Fatalf("expected %d milestones, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("milestone %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
