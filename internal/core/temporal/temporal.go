// Package temporal implements deterministic calendar and clock computation.
//
// Every function is pure: the caller supplies the anchor instant, the
// package never reads the system clock. Expressions that cannot be parsed
// unambiguously produce a typed error instead of a guess.
package temporal

import "time"

// WeekStart selects which day begins a week for period computations
// ("start of week", "next week", and friends)
//
// It does not affect named weekday expressions like "next Monday"
type WeekStart int

const (
	// WeekStartMonday is the ISO 8601 convention (Monday = day 0)
	WeekStartMonday WeekStart = iota
	// WeekStartSunday is the US/Canada convention (Sunday = day 0)
	WeekStartSunday
)

// String returns the lowercase name of the week start day
func (w WeekStart) String() string {
	if w == WeekStartSunday {
		return "sunday"
	}
	return "monday"
}

// ParseWeekStart maps "monday"/"sunday" to a WeekStart
// anything else (including "") falls back to Monday
func ParseWeekStart(s string) WeekStart {
	if s == "sunday" {
		return WeekStartSunday
	}
	return WeekStartMonday
}

// Options tunes relative expression resolution
type Options struct {
	// WeekStart is the day that begins a week for period computations
	WeekStart WeekStart
}

// daysFromMonday counts days since Monday (Mon=0 .. Sun=6)
func daysFromMonday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// daysFromWeekStart counts days since the configured week start day
func daysFromWeekStart(wd time.Weekday, ws WeekStart) int {
	if ws == WeekStartSunday {
		return int(wd)
	}
	return daysFromMonday(wd)
}
