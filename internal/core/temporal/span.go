package temporal

import (
	"fmt"
	"strconv"
	"strings"

	perr "hourglass/internal/platform/errors"
)

// span is a parsed signed duration with calendar aware day/week components
// kept separate from the sub day components
type span struct {
	sign    int64 // +1 or -1
	weeks   int64
	days    int64
	hours   int64
	minutes int64
	seconds int64
}

// subDaySeconds is the signed second count of the h/m/s components
func (d span) subDaySeconds() int64 {
	return d.sign * (d.hours*3600 + d.minutes*60 + d.seconds)
}

// totalSeconds treats every component as fixed length (1d = 86400s)
func (d span) totalSeconds() int64 {
	return d.sign * (d.weeks*7*86400 + d.days*86400 + d.hours*3600 + d.minutes*60 + d.seconds)
}

// parseSpan parses a compact duration like "+2h", "-30m", "+1d2h30m", "+1w"
//
// Grammar: a mandatory sign followed by one or more count+unit pairs.
// Units are w/d/h/m/s, case insensitive; repeated units accumulate
func parseSpan(s string) (span, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return span{}, perr.InvalidDurationf("empty duration")
	}

	var d span
	switch s[0] {
	case '+':
		d.sign = 1
	case '-':
		d.sign = -1
	default:
		return span{}, perr.InvalidDurationf("duration must start with '+' or '-': %q", s)
	}

	rest := s[1:]
	if rest == "" {
		return span{}, perr.InvalidDurationf("duration has no components: %q", s)
	}

	var num strings.Builder
	found := false
	for _, ch := range rest {
		if ch >= '0' && ch <= '9' {
			num.WriteRune(ch)
			continue
		}
		if num.Len() == 0 {
			return span{}, perr.InvalidDurationf("expected number before %q in %q", string(ch), s)
		}
		n, err := strconv.ParseInt(num.String(), 10, 64)
		if err != nil {
			return span{}, perr.InvalidDurationf("invalid number in %q", s)
		}
		num.Reset()
		found = true

		switch ch {
		case 'w', 'W':
			d.weeks += n
		case 'd', 'D':
			d.days += n
		case 'h', 'H':
			d.hours += n
		case 'm', 'M':
			d.minutes += n
		case 's', 'S':
			d.seconds += n
		default:
			return span{}, perr.InvalidDurationf("unknown unit %q in %q", string(ch), s)
		}
	}

	if num.Len() > 0 {
		return span{}, perr.InvalidDurationf("number without unit at end of %q", s)
	}
	if !found {
		return span{}, perr.InvalidDurationf("no valid components in %q", s)
	}
	return d, nil
}

// String renders the span back in canonical w, d, h, m, s order,
// dropping zero components and merging repeated units
func (d span) String() string {
	var b strings.Builder
	if d.sign >= 0 {
		b.WriteByte('+')
	} else {
		b.WriteByte('-')
	}
	if d.weeks != 0 {
		fmt.Fprintf(&b, "%dw", d.weeks)
	}
	if d.days != 0 {
		fmt.Fprintf(&b, "%dd", d.days)
	}
	if d.hours != 0 {
		fmt.Fprintf(&b, "%dh", d.hours)
	}
	if d.minutes != 0 {
		fmt.Fprintf(&b, "%dm", d.minutes)
	}
	if d.seconds != 0 {
		fmt.Fprintf(&b, "%ds", d.seconds)
	}
	if b.Len() == 1 {
		// all components zero, keep the output parseable
		b.WriteString("0s")
	}
	return b.String()
}

// humanDuration renders components as "2 days, 3 hours, 15 minutes"
// zero components are skipped except that an all zero duration reads "0 seconds"
func humanDuration(days, hours, minutes, seconds int64) string {
	parts := make([]string, 0, 4)
	add := func(n int64, unit string) {
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", unit))
			return
		}
		parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
	}
	if days > 0 {
		add(days, "day")
	}
	if hours > 0 {
		add(hours, "hour")
	}
	if minutes > 0 {
		add(minutes, "minute")
	}
	if seconds > 0 || len(parts) == 0 {
		add(seconds, "second")
	}
	return strings.Join(parts, ", ")
}
