// Package dateutil buckets instants into calendar days and Monday-based weeks.
package dateutil

import (
	"time"
)

const Layout = "2006-01-02"

// DateOnly truncates t to midnight in t's own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDate returns the calendar day of t as midnight UTC. Stored meal
// dates use this form so they stay time-zone naive.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string as a calendar date (midnight UTC).
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// SameDay compares year, month and day-of-month only. The locations of a and
// b are ignored, so a UTC calendar date matches the same day in any zone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekStart returns Monday 00:00 of the week containing ref.
func WeekStart(ref time.Time) time.Time {
	day := DateOnly(ref)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeekRange returns Monday and Sunday of ref's week, both at 00:00.
func WeekRange(ref time.Time) (time.Time, time.Time) {
	start := WeekStart(ref)
	return start, start.AddDate(0, 0, 6)
}

// WeekDays returns the seven days Monday..Sunday of ref's week.
func WeekDays(ref time.Time) []time.Time {
	start := WeekStart(ref)
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// WeekDaysThrough returns Monday..ref's own day, for partial-week views.
func WeekDaysThrough(ref time.Time) []time.Time {
	start := WeekStart(ref)
	end := DateOnly(ref)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
