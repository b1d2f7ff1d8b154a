package temporal

import (
	"time"

	perr "hourglass/internal/platform/errors"
)

// Adjustment is the result of shifting a timestamp by a duration
type Adjustment struct {
	// Original echoes the input datetime
	Original string `json:"original"`
	// AdjustedUTC is the shifted instant in UTC (RFC 3339)
	AdjustedUTC string `json:"adjusted_utc"`
	// AdjustedLocal is the shifted instant in the source timezone
	AdjustedLocal string `json:"adjusted_local"`
	// AdjustmentApplied is the canonical form of the applied duration, e.g. "+2h30m"
	AdjustmentApplied string `json:"adjustment_applied"`
}

// AdjustTimestamp shifts an RFC 3339 datetime by a signed duration
//
// Day and week components move the local calendar date in the given
// timezone so the wall clock time is preserved across DST transitions
// ("+1d" over a spring forward is still 22:00 the next evening, not +24h).
// Sub day components are plain absolute arithmetic. When the shifted wall
// clock lands in a DST gap or fold the adjustment is rejected
func AdjustTimestamp(datetime, adjustment, timezone string) (*Adjustment, error) {
	t, err := parseInstant(datetime)
	if err != nil {
		return nil, err
	}
	loc, err := parseLocation(timezone)
	if err != nil {
		return nil, err
	}
	d, err := parseSpan(adjustment)
	if err != nil {
		return nil, err
	}

	local := t.In(loc)

	var adjusted time.Time
	if d.weeks != 0 || d.days != 0 {
		// day level: move the local date, keep the wall clock, then apply
		// the sub day remainder as absolute seconds
		delta := int(d.sign * (d.weeks*7 + d.days))
		shifted, ok := localizeDay(local, delta, local.Hour(), local.Minute(), local.Second(), loc)
		if !ok {
			return nil, perr.InvalidDatetimef("ambiguous or nonexistent local time after day adjustment")
		}
		adjusted = shifted.Add(time.Duration(d.subDaySeconds()) * time.Second)
	} else {
		adjusted = local.Add(time.Duration(d.subDaySeconds()) * time.Second)
	}

	return &Adjustment{
		Original:          datetime,
		AdjustedUTC:       adjusted.UTC().Format(rfc3339Offset),
		AdjustedLocal:     adjusted.In(loc).Format(rfc3339Offset),
		AdjustmentApplied: d.String(),
	}, nil
}
