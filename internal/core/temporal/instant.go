package temporal

import (
	"fmt"
	"strings"
	"time"

	// embed the IANA database so zone lookups do not depend on the host
	_ "time/tzdata"

	perr "hourglass/internal/platform/errors"
)

// rfc3339Offset always renders a numeric offset, "+00:00" for UTC rather than "Z"
const rfc3339Offset = "2006-01-02T15:04:05-07:00"

// interpretationLayout renders a human readable local reading,
// e.g. "Tuesday, February 24, 2026 at 2:00 PM EST"
const interpretationLayout = "Monday, January 2, 2006 at 3:04 PM MST"

// parseInstant parses an RFC 3339 datetime and pins it to UTC
func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, perr.InvalidDatetimef("%q: %v", s, err)
	}
	return t.UTC(), nil
}

// parseLocation resolves an IANA timezone name
//
// The empty string and "Local" are rejected even though the runtime would
// accept them: both would silently depend on the host environment
func parseLocation(s string) (*time.Location, error) {
	if s == "" || strings.EqualFold(s, "Local") {
		return nil, perr.InvalidTimezonef("unknown timezone: %q", s)
	}
	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, perr.InvalidTimezonef("unknown timezone: %q", s)
	}
	return loc, nil
}

// dstActive reports whether the offset at t differs from the zone's
// January 1 noon offset for the same year. Zones without DST compare
// equal year round; southern hemisphere zones report their summer
// offset as active since January is their DST period baseline inverted,
// matching the offset-difference definition rather than a hemisphere table
func dstActive(t time.Time, loc *time.Location) bool {
	utc := t.UTC()
	jan1 := time.Date(utc.Year(), time.January, 1, 12, 0, 0, 0, time.UTC)

	_, cur := t.In(loc).Zone()
	_, jan := jan1.In(loc).Zone()
	return cur != jan
}

// formatUTCOffset renders the offset of t as "+HH:MM" / "-HH:MM"
func formatUTCOffset(t time.Time) string {
	_, secs := t.Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, (secs%3600)/60)
}

// localize maps a wall clock reading onto the single instant that carries
// it in loc. Returns false when the reading does not exist (DST gap) or
// exists twice (DST fold)
//
// The probe works backwards from a UTC guess: collect the zone offsets in
// effect around the guess, subtract each candidate offset, and keep the
// instants that round trip to the requested wall clock
func localize(year int, month time.Month, day, hour, minute, sec int, loc *time.Location) (time.Time, bool) {
	guess := time.Date(year, month, day, hour, minute, sec, 0, time.UTC)

	offsets := make(map[int]struct{}, 2)
	for _, probe := range []time.Duration{-36 * time.Hour, 0, 36 * time.Hour} {
		_, off := guess.Add(probe).In(loc).Zone()
		offsets[off] = struct{}{}
	}

	var hit time.Time
	hits := 0
	want := guess // normalized wall clock components
	for off := range offsets {
		cand := guess.Add(-time.Duration(off) * time.Second).In(loc)
		if cand.Year() == want.Year() && cand.Month() == want.Month() && cand.Day() == want.Day() &&
			cand.Hour() == want.Hour() && cand.Minute() == want.Minute() && cand.Second() == want.Second() {
			hit = cand
			hits++
		}
	}
	if hits != 1 {
		return time.Time{}, false
	}
	return hit, true
}

// localizeDay is localize at a fixed time of day on the date carried by t
func localizeDay(t time.Time, dayDelta, hour, minute, sec int, loc *time.Location) (time.Time, bool) {
	return localize(t.Year(), t.Month(), t.Day()+dayDelta, hour, minute, sec, loc)
}
