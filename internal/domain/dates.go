package domain

import (
	"strconv"
	"strings"
	"time"
)

// DayLayout is the canonical calendar-day form every record keys on.
const DayLayout = "2006-01-02"

// DayOf truncates a date string to its calendar-day prefix. Entries may
// carry a time suffix; day matching never parses it.
func DayOf(date string) string {
	if len(date) > len(DayLayout) {
		return date[:len(DayLayout)]
	}
	return date
}

// SameDay reports whether a record date falls on the given calendar day.
func SameDay(date, day string) bool {
	return DayOf(date) == DayOf(day)
}

// FormatDay renders a time as a calendar-day string.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a calendar-day string. A malformed day is a programmer
// error and the only failure this layer surfaces.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(DayLayout, DayOf(day))
}

// WeekStart normalizes a time to the Monday of its week.
func WeekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
}

// ParseClock parses a user-entered "mm:ss" or "hh:mm:ss" duration into
// seconds. Returns false for anything it cannot read; user-authored strings
// are never an error.
func ParseClock(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0.0
	for _, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}
