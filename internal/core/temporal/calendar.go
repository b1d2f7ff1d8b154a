package temporal

import (
	"strconv"
	"strings"
	"time"
)

// lastDayOfMonth returns the final calendar day of year/month as a UTC date
func lastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// prevMonth and nextMonth step a year/month pair across year boundaries
func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// quarterOf returns the zero based quarter index of a month (Q1=0 .. Q4=3)
func quarterOf(month time.Month) int {
	return (int(month) - 1) / 3
}

// tryPeriodBoundary handles "start of week", "end of month", "end of
// quarter" and friends for the current period
func tryPeriodBoundary(s string, local time.Time, loc *time.Location, ws WeekStart) (time.Time, bool) {
	year, month := local.Year(), local.Month()

	switch s {
	case "start of today":
		return localizeDay(local, 0, 0, 0, 0, loc)
	case "end of today":
		return localizeDay(local, 0, 23, 59, 59, loc)
	case "start of week":
		return localizeDay(local, -daysFromWeekStart(local.Weekday(), ws), 0, 0, 0, loc)
	case "end of week":
		return localizeDay(local, 6-daysFromWeekStart(local.Weekday(), ws), 23, 59, 59, loc)
	case "start of month":
		return localize(year, month, 1, 0, 0, 0, loc)
	case "end of month":
		last := lastDayOfMonth(year, month)
		return localize(last.Year(), last.Month(), last.Day(), 23, 59, 59, loc)
	case "start of year":
		return localize(year, time.January, 1, 0, 0, 0, loc)
	case "end of year":
		return localize(year, time.December, 31, 23, 59, 59, loc)
	case "start of quarter":
		first := time.Month(quarterOf(month)*3 + 1)
		return localize(year, first, 1, 0, 0, 0, loc)
	case "end of quarter":
		lastMonth := time.Month(quarterOf(month)*3 + 3)
		last := lastDayOfMonth(year, lastMonth)
		return localize(last.Year(), last.Month(), last.Day(), 23, 59, 59, loc)
	}
	return time.Time{}, false
}

// tryPeriodRelative handles bare "next week", "last month", "next year"
// which all land on the start of the period
func tryPeriodRelative(s string, local time.Time, loc *time.Location, ws WeekStart) (time.Time, bool) {
	year, month := local.Year(), local.Month()

	switch s {
	case "next week":
		return localizeDay(local, 7-daysFromWeekStart(local.Weekday(), ws), 0, 0, 0, loc)
	case "last week":
		return localizeDay(local, -daysFromWeekStart(local.Weekday(), ws)-7, 0, 0, 0, loc)
	case "next month":
		y, m := nextMonth(year, month)
		return localize(y, m, 1, 0, 0, 0, loc)
	case "last month":
		y, m := prevMonth(year, month)
		return localize(y, m, 1, 0, 0, 0, loc)
	case "next year":
		return localize(year+1, time.January, 1, 0, 0, 0, loc)
	case "last year":
		return localize(year-1, time.January, 1, 0, 0, 0, loc)
	}
	return time.Time{}, false
}

// tryCompoundPeriod handles "start of last week", "end of next month",
// "end of last quarter": a boundary applied to an adjacent period
func tryCompoundPeriod(s string, local time.Time, loc *time.Location, ws WeekStart) (time.Time, bool) {
	var isStart bool
	var rest string
	if r, found := strings.CutPrefix(s, "start of "); found {
		isStart, rest = true, r
	} else if r, found := strings.CutPrefix(s, "end of "); found {
		isStart, rest = false, r
	} else {
		return time.Time{}, false
	}

	year, month := local.Year(), local.Month()

	switch rest {
	case "last week", "next week":
		var startDelta int
		if rest == "last week" {
			startDelta = -daysFromWeekStart(local.Weekday(), ws) - 7
		} else {
			startDelta = 7 - daysFromWeekStart(local.Weekday(), ws)
		}
		if isStart {
			return localizeDay(local, startDelta, 0, 0, 0, loc)
		}
		return localizeDay(local, startDelta+6, 23, 59, 59, loc)

	case "last month":
		y, m := prevMonth(year, month)
		if isStart {
			return localize(y, m, 1, 0, 0, 0, loc)
		}
		last := lastDayOfMonth(y, m)
		return localize(last.Year(), last.Month(), last.Day(), 23, 59, 59, loc)

	case "next month":
		y, m := nextMonth(year, month)
		if isStart {
			return localize(y, m, 1, 0, 0, 0, loc)
		}
		last := lastDayOfMonth(y, m)
		return localize(last.Year(), last.Month(), last.Day(), 23, 59, 59, loc)

	case "last year":
		if isStart {
			return localize(year-1, time.January, 1, 0, 0, 0, loc)
		}
		return localize(year-1, time.December, 31, 23, 59, 59, loc)

	case "next year":
		if isStart {
			return localize(year+1, time.January, 1, 0, 0, 0, loc)
		}
		return localize(year+1, time.December, 31, 23, 59, 59, loc)

	case "last quarter", "next quarter":
		q := quarterOf(month)
		y := year
		if rest == "last quarter" {
			if q == 0 {
				y, q = year-1, 3
			} else {
				q--
			}
		} else {
			if q == 3 {
				y, q = year+1, 0
			} else {
				q++
			}
		}
		if isStart {
			return localize(y, time.Month(q*3+1), 1, 0, 0, 0, loc)
		}
		last := lastDayOfMonth(y, time.Month(q*3+3))
		return localize(last.Year(), last.Month(), last.Day(), 23, 59, 59, loc)
	}

	return time.Time{}, false
}

// tryOrdinalDate handles "first Monday of March", "last Friday of the
// month", "third Tuesday of March 2026", "last day of September"
//
// By this point normalization has already dropped "the", so the month slot
// reads "month" for the anchor's month
func tryOrdinalDate(s string, local time.Time, loc *time.Location) (time.Time, bool) {
	parts := strings.Fields(s)
	if len(parts) < 4 {
		return time.Time{}, false
	}
	ofIdx := -1
	for i, p := range parts {
		if p == "of" {
			ofIdx = i
			break
		}
	}
	if ofIdx < 2 || ofIdx+1 >= len(parts) {
		return time.Time{}, false
	}

	// "last day of <month> [year]"
	if parts[0] == "last" && parts[1] == "day" {
		month, ok := parseMonth(parts[ofIdx+1])
		if !ok {
			return time.Time{}, false
		}
		year := local.Year()
		if ofIdx+2 < len(parts) {
			y, err := strconv.Atoi(parts[ofIdx+2])
			if err != nil {
				return time.Time{}, false
			}
			year = y
		}
		last := lastDayOfMonth(year, month)
		return localize(last.Year(), last.Month(), last.Day(), 0, 0, 0, loc)
	}

	wd, ok := parseWeekday(parts[1])
	if !ok {
		return time.Time{}, false
	}

	var year int
	var month time.Month
	monthPart := parts[ofIdx+1]
	switch {
	case monthPart == "month":
		year, month = local.Year(), local.Month()
	case monthPart == "next" && ofIdx+2 < len(parts) && parts[ofIdx+2] == "month":
		year, month = nextMonth(local.Year(), local.Month())
	default:
		m, ok := parseMonth(monthPart)
		if !ok {
			return time.Time{}, false
		}
		month = m
		year = local.Year()
		if ofIdx+2 < len(parts) {
			if y, err := strconv.Atoi(parts[ofIdx+2]); err == nil {
				year = y
			}
		}
	}

	ordinal, ok := parseOrdinal(parts[0])
	if !ok {
		return time.Time{}, false
	}
	date, ok := findNthWeekday(year, month, wd, ordinal)
	if !ok {
		return time.Time{}, false
	}
	return localize(date.Year(), date.Month(), date.Day(), 0, 0, 0, loc)
}

// findNthWeekday locates the nth weekday of a month as a UTC date.
// Negative ordinals count back from the end (-1 = last). Occurrences
// that spill out of the month are rejected, so "fifth Monday" of a four
// Monday month does not exist
func findNthWeekday(year int, month time.Month, wd time.Weekday, ordinal int) (time.Time, bool) {
	if ordinal > 0 {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		diff := (daysFromMonday(wd) - daysFromMonday(first.Weekday()) + 7) % 7
		target := first.AddDate(0, 0, diff+7*(ordinal-1))
		if target.Month() != month {
			return time.Time{}, false
		}
		return target, true
	}

	last := lastDayOfMonth(year, month)
	diff := (daysFromMonday(last.Weekday()) - daysFromMonday(wd) + 7) % 7
	target := last.AddDate(0, 0, -diff-7*(-ordinal-1))
	if target.Month() != month {
		return time.Time{}, false
	}
	return target, true
}
