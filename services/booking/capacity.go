package booking

import "clinicbook/models"

// IsSlotAvailable reports whether a candidate [start, end) interval can be
// admitted without the number of simultaneous appointments exceeding capacity
// at any instant. Times are zero-padded "HH:MM" strings, so lexicographic
// comparison is chronological.
//
// Overlap is open-ended (a.start < end && a.end > start), which admits
// back-to-back appointments. When fewer than capacity appointments overlap
// the candidate at all, no instant can be saturated. Otherwise we sweep the
// critical points — the candidate's own start plus every overlapping
// appointment start inside the candidate window — and count the intervals
// active at each. Counts only change at interval starts, so checking those
// points is exact without a minute-by-minute scan.
func IsSlotAvailable(existing []models.BookedInterval, start, end string, capacity int) bool {
	if capacity < 1 {
		capacity = 1
	}
	// Zero-duration intervals never overlap anything.
	if start >= end {
		return true
	}

	var overlapping []models.BookedInterval
	for _, a := range existing {
		if a.StartTime >= a.EndTime {
			continue
		}
		if a.StartTime < end && a.EndTime > start {
			overlapping = append(overlapping, a)
		}
	}

	if len(overlapping) < capacity {
		return true
	}

	points := map[string]struct{}{start: {}}
	for _, a := range overlapping {
		if a.StartTime >= start && a.StartTime < end {
			points[a.StartTime] = struct{}{}
		}
	}

	for point := range points {
		active := 0
		for _, a := range overlapping {
			if a.StartTime <= point && a.EndTime > point {
				active++
			}
		}
		// The candidate itself occupies one unit at every checked point.
		if active >= capacity {
			return false
		}
	}

	return true
}
