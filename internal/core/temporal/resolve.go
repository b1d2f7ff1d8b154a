package temporal

import (
	"strings"
	"time"

	perr "hourglass/internal/platform/errors"
)

// Resolution is the result of resolving a relative time expression
type Resolution struct {
	// ResolvedUTC is the resolved instant in UTC (RFC 3339)
	ResolvedUTC string `json:"resolved_utc"`
	// ResolvedLocal is the resolved instant in the given timezone
	ResolvedLocal string `json:"resolved_local"`
	// Timezone is the IANA name used for local time interpretation
	Timezone string `json:"timezone"`
	// Interpretation is a human readable reading,
	// e.g. "Tuesday, February 24, 2026 at 2:00 PM EST"
	Interpretation string `json:"interpretation"`
}

// ResolveRelative resolves a relative time expression against an anchor
// instant using the ISO week convention (Monday start)
func ResolveRelative(anchor time.Time, expression, timezone string) (*Resolution, error) {
	return ResolveRelativeWithOptions(anchor, expression, timezone, Options{})
}

// ResolveRelativeWithOptions resolves a relative time expression to an
// absolute datetime
//
// The expression grammar covers anchored references ("now", "today",
// "tomorrow", "yesterday"), weekday references ("next Monday", "this
// Friday", "last Wednesday"), named and explicit times ("noon", "2pm",
// "14:30"), offsets ("+2h", "in 2 hours", "30 minutes ago", "a week from
// now"), combined forms ("next Tuesday at 2pm", "tomorrow morning"),
// period boundaries ("start of week", "end of month", "end of last
// quarter", "next year"), ordinal dates ("first Monday of March", "last
// Friday of the month"), and RFC 3339 / ISO date passthrough
//
// Recognizers run in order of specificity and the first match wins. An
// expression no recognizer claims is rejected, never guessed at
func ResolveRelativeWithOptions(anchor time.Time, expression, timezone string, opts Options) (*Resolution, error) {
	loc, err := parseLocation(timezone)
	if err != nil {
		return nil, err
	}
	anchorUTC := anchor.UTC()
	local := anchorUTC.In(loc)
	ws := opts.WeekStart

	norm := normalizeExpression(expression)

	steps := []func() (time.Time, bool){
		func() (time.Time, bool) { return tryPassthroughRFC3339(norm, loc) },
		func() (time.Time, bool) { return tryPassthroughISODate(norm, loc) },
		func() (time.Time, bool) { return tryAnchored(norm, local, loc) },
		func() (time.Time, bool) { return tryCombinedWeekdayTime(norm, local, loc) },
		func() (time.Time, bool) { return tryCombinedAnchorTime(norm, local, loc) },
		func() (time.Time, bool) { return tryWeekdayRelative(norm, local, loc) },
		func() (time.Time, bool) { return tryCompoundPeriod(norm, local, loc, ws) },
		func() (time.Time, bool) { return tryPeriodBoundary(norm, local, loc, ws) },
		func() (time.Time, bool) { return tryPeriodRelative(norm, local, loc, ws) },
		func() (time.Time, bool) { return tryOrdinalDate(norm, local, loc) },
		func() (time.Time, bool) { return tryNaturalOffset(norm, anchorUTC) },
		func() (time.Time, bool) { return tryDurationOffset(norm, anchorUTC) },
		func() (time.Time, bool) { return tryTimeOfDayNamed(norm, local, loc) },
		func() (time.Time, bool) { return tryExplicitTime(norm, local, loc) },
	}

	var resolved time.Time
	matched := false
	for _, step := range steps {
		if t, ok := step(); ok {
			resolved = t
			matched = true
			break
		}
	}
	if !matched {
		return nil, perr.InvalidExpressionf("cannot parse expression: %q", strings.TrimSpace(expression))
	}

	return &Resolution{
		ResolvedUTC:    resolved.UTC().Format(rfc3339Offset),
		ResolvedLocal:  resolved.Format(rfc3339Offset),
		Timezone:       timezone,
		Interpretation: resolved.Format(interpretationLayout),
	}, nil
}

// tryPassthroughRFC3339 accepts a full RFC 3339 datetime and re-expresses
// it in the requested timezone. Uppercased first since normalization
// folded the T/Z markers
func tryPassthroughRFC3339(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, strings.ToUpper(s))
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}

// tryPassthroughISODate accepts YYYY-MM-DD as start of day in the timezone
func tryPassthroughISODate(s string, loc *time.Location) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return localize(d.Year(), d.Month(), d.Day(), 0, 0, 0, loc)
}

// tryAnchored handles "now", "today", "tomorrow", "yesterday"
func tryAnchored(s string, local time.Time, loc *time.Location) (time.Time, bool) {
	switch s {
	case "now":
		return local, true
	case "today":
		return localizeDay(local, 0, 0, 0, 0, loc)
	case "tomorrow":
		return localizeDay(local, 1, 0, 0, 0, loc)
	case "yesterday":
		return localizeDay(local, -1, 0, 0, 0, loc)
	}
	return time.Time{}, false
}

// weekdayDelta computes the signed day offset from the anchor date to the
// requested weekday under a next/this/last modifier
//
// "next" is strictly future (a week out when the anchor already sits on
// the target weekday), "last" strictly past, "this" stays inside the
// anchor's Monday based week and may land before or after the anchor
func weekdayDelta(modifier string, target, current time.Weekday) (int, bool) {
	switch modifier {
	case "next":
		d := (daysFromMonday(target) - daysFromMonday(current) + 7) % 7
		if d == 0 {
			d = 7
		}
		return d, true
	case "this":
		return daysFromMonday(target) - daysFromMonday(current), true
	case "last":
		d := (daysFromMonday(current) - daysFromMonday(target) + 7) % 7
		if d == 0 {
			d = 7
		}
		return -d, true
	}
	return 0, false
}

// tryWeekdayRelative handles "next Monday", "this Friday", "last Wednesday"
func tryWeekdayRelative(s string, local time.Time, loc *time.Location) (time.Time, bool) {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	wd, ok := parseWeekday(parts[1])
	if !ok {
		return time.Time{}, false
	}
	delta, ok := weekdayDelta(parts[0], wd, local.Weekday())
	if !ok {
		return time.Time{}, false
	}
	return localizeDay(local, delta, 0, 0, 0, loc)
}

// tryCombinedWeekdayTime handles "next Tuesday at 2pm", "next Friday evening"
func tryCombinedWeekdayTime(s string, local time.Time, loc *time.Location) (time.Time, bool) {
	parts := strings.SplitN(s, " ", 3)
	if len(parts) < 2 {
		return time.Time{}, false
	}
	modifier := parts[0]
	if modifier != "next" && modifier != "this" && modifier != "last" {
		return time.Time{}, false
	}
	wd, ok := parseWeekday(parts[1])
	if !ok {
		return time.Time{}, false
	}
	delta, ok := weekdayDelta(modifier, wd, local.Weekday())
	if !ok {
		return time.Time{}, false
	}
	base, ok := localizeDay(local, delta, 0, 0, 0, loc)
	if !ok {
		return time.Time{}, false
	}
	if len(parts) == 2 {
		return base, true
	}

	timePart := parts[2]
	if at, found := strings.CutPrefix(timePart, "at "); found {
		h, m, sec, ok := parseClock(at)
		if !ok {
			return time.Time{}, false
		}
		return localizeDay(base, 0, h, m, sec, loc)
	}
	if h, ok := namedTimeHour(timePart); ok {
		return localizeDay(base, 0, h, 0, 0, loc)
	}
	return time.Time{}, false
}

// tryCombinedAnchorTime handles "tomorrow at 2pm", "today at noon",
// "tomorrow morning"
func tryCombinedAnchorTime(s string, local time.Time, loc *time.Location) (time.Time, bool) {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	switch parts[0] {
	case "today", "tomorrow", "yesterday":
	default:
		return time.Time{}, false
	}
	base, ok := tryAnchored(parts[0], local, loc)
	if !ok {
		return time.Time{}, false
	}

	timePart := parts[1]
	if at, found := strings.CutPrefix(timePart, "at "); found {
		// named times first so "at noon" does not hit the clock parser
		if h, ok := namedTimeHour(at); ok {
			return localizeDay(base, 0, h, 0, 0, loc)
		}
		h, m, sec, ok := parseClock(at)
		if !ok {
			return time.Time{}, false
		}
		return localizeDay(base, 0, h, m, sec, loc)
	}
	if h, ok := namedTimeHour(timePart); ok {
		return localizeDay(base, 0, h, 0, 0, loc)
	}
	return time.Time{}, false
}

// tryTimeOfDayNamed handles bare "morning", "noon", "eob" on the anchor date
func tryTimeOfDayNamed(s string, local time.Time, loc *time.Location) (time.Time, bool) {
	h, ok := namedTimeHour(s)
	if !ok {
		return time.Time{}, false
	}
	return localizeDay(local, 0, h, 0, 0, loc)
}

// tryExplicitTime handles bare "2pm", "2:30pm", "14:00" on the anchor date
func tryExplicitTime(s string, local time.Time, loc *time.Location) (time.Time, bool) {
	h, m, sec, ok := parseClock(s)
	if !ok {
		return time.Time{}, false
	}
	return localizeDay(local, 0, h, m, sec, loc)
}

// tryNaturalOffset handles "in 2 hours", "30 minutes ago", "a week from now"
// offsets are absolute time arithmetic, so the result is expressed in UTC
func tryNaturalOffset(s string, anchor time.Time) (time.Time, bool) {
	if rest, found := strings.CutPrefix(s, "in "); found {
		n, unit, ok := parseCountAndUnit(rest)
		if !ok {
			return time.Time{}, false
		}
		secs, ok := unitSeconds(n, unit)
		if !ok {
			return time.Time{}, false
		}
		return anchor.Add(time.Duration(secs) * time.Second).UTC(), true
	}

	if rest, found := strings.CutSuffix(s, " ago"); found {
		n, unit, ok := parseCountAndUnit(rest)
		if !ok {
			return time.Time{}, false
		}
		secs, ok := unitSeconds(n, unit)
		if !ok {
			return time.Time{}, false
		}
		return anchor.Add(-time.Duration(secs) * time.Second).UTC(), true
	}

	if rest, found := strings.CutSuffix(s, " from now"); found {
		n, unit, ok := parseCountAndUnitWithArticle(rest)
		if !ok {
			return time.Time{}, false
		}
		secs, ok := unitSeconds(n, unit)
		if !ok {
			return time.Time{}, false
		}
		return anchor.Add(time.Duration(secs) * time.Second).UTC(), true
	}

	return time.Time{}, false
}

// tryDurationOffset handles compact offsets like "+2h", "-30m", "+1d2h30m"
// applied to the anchor as absolute seconds (weeks and days are fixed length
// here, unlike AdjustTimestamp's calendar aware day handling)
func tryDurationOffset(s string, anchor time.Time) (time.Time, bool) {
	if !strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "-") {
		return time.Time{}, false
	}
	d, err := parseSpan(s)
	if err != nil {
		return time.Time{}, false
	}
	return anchor.Add(time.Duration(d.totalSeconds()) * time.Second).UTC(), true
}
