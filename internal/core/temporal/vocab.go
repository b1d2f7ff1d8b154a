package temporal

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// foldCaser lowercases with Unicode case folding so matching is stable
// for the odd non ASCII input
var foldCaser = cases.Fold()

// normalizeExpression trims, folds case, strips articles, and collapses
// repeated spaces. Leading "a"/"an" survive because they carry meaning
// in patterns like "a week from now"
func normalizeExpression(s string) string {
	s = foldCaser.String(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " the ", " ")
	s = strings.ReplaceAll(s, " a ", " ")
	s = strings.ReplaceAll(s, " an ", " ")
	s = strings.TrimPrefix(s, "the ")
	return strings.Join(strings.Fields(s), " ")
}

// parseWeekday accepts full and abbreviated lowercase weekday names
func parseWeekday(s string) (time.Weekday, bool) {
	switch s {
	case "monday", "mon":
		return time.Monday, true
	case "tuesday", "tue", "tues":
		return time.Tuesday, true
	case "wednesday", "wed":
		return time.Wednesday, true
	case "thursday", "thu", "thurs":
		return time.Thursday, true
	case "friday", "fri":
		return time.Friday, true
	case "saturday", "sat":
		return time.Saturday, true
	case "sunday", "sun":
		return time.Sunday, true
	}
	return 0, false
}

// parseMonth accepts full and abbreviated lowercase month names
func parseMonth(s string) (time.Month, bool) {
	switch s {
	case "january", "jan":
		return time.January, true
	case "february", "feb":
		return time.February, true
	case "march", "mar":
		return time.March, true
	case "april", "apr":
		return time.April, true
	case "may":
		return time.May, true
	case "june", "jun":
		return time.June, true
	case "july", "jul":
		return time.July, true
	case "august", "aug":
		return time.August, true
	case "september", "sep", "sept":
		return time.September, true
	case "october", "oct":
		return time.October, true
	case "november", "nov":
		return time.November, true
	case "december", "dec":
		return time.December, true
	}
	return 0, false
}

// parseOrdinal maps "first".."fifth" and "1st".."5th" to 1..5, "last" to -1
func parseOrdinal(s string) (int, bool) {
	switch s {
	case "first", "1st":
		return 1, true
	case "second", "2nd":
		return 2, true
	case "third", "3rd":
		return 3, true
	case "fourth", "4th":
		return 4, true
	case "fifth", "5th":
		return 5, true
	case "last":
		return -1, true
	}
	return 0, false
}

// namedTimeHour maps time of day vocabulary to a local hour
func namedTimeHour(s string) (int, bool) {
	switch s {
	case "morning", "start of business", "sob":
		return 9, true
	case "noon", "lunch":
		return 12, true
	case "afternoon":
		return 13, true
	case "end of day", "end of business", "eob":
		return 17, true
	case "evening":
		return 18, true
	case "night":
		return 21, true
	case "midnight":
		return 0, true
	}
	return 0, false
}

// parseClock parses "14:00", "14:30:00", "2pm", "2:30pm", "2 pm"
func parseClock(s string) (hour, minute, sec int, ok bool) {
	s = strings.TrimSpace(s)

	// 24-hour "H:MM[:SS]"
	if !strings.ContainsAny(s, "apm") {
		fields := strings.Split(s, ":")
		if len(fields) < 2 || len(fields) > 3 {
			return 0, 0, 0, false
		}
		nums := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return 0, 0, 0, false
			}
			nums[i] = n
		}
		hour, minute = nums[0], nums[1]
		if len(nums) == 3 {
			sec = nums[2]
		}
		if hour > 23 || minute > 59 || sec > 59 {
			return 0, 0, 0, false
		}
		return hour, minute, sec, true
	}

	// 12-hour "H[:MM[:SS]]am/pm", optional space before the meridiem
	s = strings.ReplaceAll(s, " ", "")
	var pm bool
	switch {
	case strings.HasSuffix(s, "pm"):
		pm = true
		s = strings.TrimSuffix(s, "pm")
	case strings.HasSuffix(s, "am"):
		s = strings.TrimSuffix(s, "am")
	default:
		return 0, 0, 0, false
	}

	fields := strings.Split(s, ":")
	h, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, false
	}
	if len(fields) > 1 {
		if minute, err = strconv.Atoi(fields[1]); err != nil {
			return 0, 0, 0, false
		}
	}
	if len(fields) > 2 {
		if sec, err = strconv.Atoi(fields[2]); err != nil {
			return 0, 0, 0, false
		}
	}

	switch {
	case h == 12 && pm:
		hour = 12
	case h == 12:
		hour = 0
	case pm:
		hour = h + 12
	default:
		hour = h
	}
	if hour > 23 || minute > 59 || sec > 59 {
		return 0, 0, 0, false
	}
	return hour, minute, sec, true
}

// parseCountAndUnit parses "2 hours", "30 minutes"
func parseCountAndUnit(s string) (int64, string, bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, "", false
	}
	n, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, "", false
	}
	unit, ok := normalizeUnit(fields[1])
	if !ok {
		return 0, "", false
	}
	return n, unit, true
}

// parseCountAndUnitWithArticle additionally accepts "a week" / "an hour" as count 1
func parseCountAndUnitWithArticle(s string) (int64, string, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, "", false
	}
	if fields[0] == "a" || fields[0] == "an" {
		if len(fields) < 2 {
			return 0, "", false
		}
		unit, ok := normalizeUnit(fields[1])
		if !ok {
			return 0, "", false
		}
		return 1, unit, true
	}
	return parseCountAndUnit(s)
}

// normalizeUnit folds singular, plural, and shorthand unit spellings
func normalizeUnit(s string) (string, bool) {
	switch s {
	case "second", "seconds", "sec", "secs":
		return "seconds", true
	case "minute", "minutes", "min", "mins":
		return "minutes", true
	case "hour", "hours", "hr", "hrs":
		return "hours", true
	case "day", "days":
		return "days", true
	case "week", "weeks", "wk", "wks":
		return "weeks", true
	}
	return "", false
}

// unitSeconds converts a count of a normalized unit to seconds
func unitSeconds(n int64, unit string) (int64, bool) {
	switch unit {
	case "seconds":
		return n, true
	case "minutes":
		return n * 60, true
	case "hours":
		return n * 3600, true
	case "days":
		return n * 86400, true
	case "weeks":
		return n * 604800, true
	}
	return 0, false
}
