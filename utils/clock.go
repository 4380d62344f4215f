package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayOf returns the lowercase weekday name ("monday", ...) for a
// "YYYY-MM-DD" date. The date is constructed from its components so the
// result never shifts across timezone or midnight boundaries, which happens
// when the string is parsed as a UTC instant.
func WeekdayOf(date string) (string, error) {
	y, m, d, err := splitDate(date)
	if err != nil {
		return "", err
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	return weekdayNames[int(t.Weekday())], nil
}

// AddMinutes adds minutes to a "HH:MM" clock value, wrapping within a 24h
// day. Seconds are truncated if present. Callers are responsible for
// rejecting results that wrapped past the end of a schedule band.
func AddMinutes(clock string, minutes int) (string, error) {
	h, m, err := splitClock(clock)
	if err != nil {
		return "", err
	}
	total := (h*60 + m + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// NormalizeClock reduces "HH:MM:SS" to "HH:MM"; "HH:MM" passes through.
func NormalizeClock(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}

// IsValidDate reports whether the value is a well-formed calendar date.
func IsValidDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// IsValidClock reports whether the value is a well-formed "HH:MM" time.
func IsValidClock(clock string) bool {
	if !clockRe.MatchString(clock) {
		return false
	}
	h, m, err := splitClock(clock)
	return err == nil && h < 24 && m < 60
}

func splitDate(date string) (year, month, day int, err error) {
	if !dateRe.MatchString(date) {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	parts := strings.Split(date, "-")
	year, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	day, _ = strconv.Atoi(parts[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("invalid date %q", date)
	}
	return year, month, day, nil
}

func splitClock(clock string) (hour, minute int, err error) {
	if !clockRe.MatchString(clock) {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	hour, _ = strconv.Atoi(clock[0:2])
	minute, _ = strconv.Atoi(clock[3:5])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q", clock)
	}
	return hour, minute, nil
}
