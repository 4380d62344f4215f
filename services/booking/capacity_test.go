package booking

import (
	"testing"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
)

func intervals(pairs ...string) []models.BookedInterval {
	var out []models.BookedInterval
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, models.BookedInterval{StartTime: pairs[i], EndTime: pairs[i+1]})
	}
	return out
}

func TestIsSlotAvailable(t *testing.T) {
	tests := []struct {
		name     string
		existing []models.BookedInterval
		start    string
		end      string
		capacity int
		want     bool
	}{
		{
			name:     "empty calendar",
			existing: nil,
			start:    "09:00", end: "09:30", capacity: 1,
			want: true,
		},
		{
			name:     "direct overlap at capacity one",
			existing: intervals("09:00", "09:30"),
			start:    "09:00", end: "09:30", capacity: 1,
			want: false,
		},
		{
			name:     "partial overlap at capacity one",
			existing: intervals("09:15", "09:45"),
			start:    "09:00", end: "09:30", capacity: 1,
			want: false,
		},
		{
			name:     "back to back before",
			existing: intervals("08:30", "09:00"),
			start:    "09:00", end: "09:30", capacity: 1,
			want: true,
		},
		{
			name:     "back to back after",
			existing: intervals("09:30", "10:00"),
			start:    "09:00", end: "09:30", capacity: 1,
			want: true,
		},
		{
			name:     "one overlap fits at capacity two",
			existing: intervals("09:00", "09:30"),
			start:    "09:00", end: "09:30", capacity: 2,
			want: true,
		},
		{
			name:     "two overlaps saturate capacity two",
			existing: intervals("09:00", "09:30", "09:00", "09:30"),
			start:    "09:00", end: "09:30", capacity: 2,
			want: false,
		},
		{
			name: "staggered intervals never concurrent enough",
			// At most one existing interval is active at any instant of the
			// candidate window even though two overlap it overall.
			existing: intervals("08:45", "09:10", "09:10", "09:40"),
			start:    "09:00", end: "09:30", capacity: 2,
			want: true,
		},
		{
			name:     "saturation inside the window not at its start",
			existing: intervals("09:00", "10:00", "09:30", "10:00"),
			start:    "09:15", end: "09:45", capacity: 2,
			want: false,
		},
		{
			name:     "zero duration candidate always fits",
			existing: intervals("09:00", "09:30"),
			start:    "09:00", end: "09:00", capacity: 1,
			want: true,
		},
		{
			name:     "degenerate existing interval ignored",
			existing: intervals("09:00", "09:00"),
			start:    "09:00", end: "09:30", capacity: 1,
			want: true,
		},
		{
			name:     "capacity below one treated as one",
			existing: intervals("09:00", "09:30"),
			start:    "09:00", end: "09:30", capacity: 0,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSlotAvailable(tt.existing, tt.start, tt.end, tt.capacity)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A slot admitted at some capacity must stay admitted at every higher one.
func TestIsSlotAvailableMonotonicInCapacity(t *testing.T) {
	existing := intervals(
		"09:00", "10:00",
		"09:30", "10:30",
		"09:45", "10:15",
		"11:00", "11:30",
	)
	for c := 1; c < 6; c++ {
		if IsSlotAvailable(existing, "09:30", "10:00", c) {
			for higher := c + 1; higher <= 6; higher++ {
				assert.True(t, IsSlotAvailable(existing, "09:30", "10:00", higher),
					"admitted at capacity %d but rejected at %d", c, higher)
			}
		}
	}
}
