package temporal

import (
	"strings"
	"testing"
	"time"

	perr "hourglass/internal/platform/errors"
)

// anchorWed is Wednesday, February 18, 2026 at 14:30:00 UTC
var anchorWed = time.Date(2026, time.February, 18, 14, 30, 0, 0, time.UTC)

func TestResolveRelative_Table(t *testing.T) {
	tests := []struct {
		name       string
		anchor     time.Time
		expression string
		timezone   string
		utc        string
		local      string // optional
	}{
		// anchored
		{
			name: "now", anchor: anchorWed, expression: "now", timezone: "UTC",
			utc: "2026-02-18T14:30:00+00:00",
		},
		{
			name: "today", anchor: anchorWed, expression: "today", timezone: "UTC",
			utc: "2026-02-18T00:00:00+00:00",
		},
		{
			name: "tomorrow", anchor: anchorWed, expression: "tomorrow", timezone: "UTC",
			utc: "2026-02-19T00:00:00+00:00",
		},
		{
			name: "yesterday", anchor: anchorWed, expression: "yesterday", timezone: "UTC",
			utc: "2026-02-17T00:00:00+00:00",
		},

		// weekday relative
		{
			name: "next monday from wednesday", anchor: anchorWed, expression: "next Monday", timezone: "UTC",
			utc: "2026-02-23T00:00:00+00:00",
		},
		{
			name:   "next friday on a friday skips a week",
			anchor: time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC),
			expression: "next Friday", timezone: "UTC",
			utc: "2026-02-27T00:00:00+00:00",
		},
		{
			name:   "this wednesday from monday",
			anchor: time.Date(2026, time.February, 16, 10, 0, 0, 0, time.UTC),
			expression: "this Wednesday", timezone: "UTC",
			utc: "2026-02-18T00:00:00+00:00",
		},
		{
			name:   "this monday from wednesday is in the past",
			anchor: anchorWed, expression: "this Monday", timezone: "UTC",
			utc: "2026-02-16T00:00:00+00:00",
		},
		{
			name:   "last tuesday from thursday",
			anchor: time.Date(2026, time.February, 19, 10, 0, 0, 0, time.UTC),
			expression: "last Tuesday", timezone: "UTC",
			utc: "2026-02-17T00:00:00+00:00",
		},
		{
			name: "abbreviated weekday", anchor: anchorWed, expression: "next tues", timezone: "UTC",
			utc: "2026-02-24T00:00:00+00:00",
		},

		// named times of day
		{
			name: "morning", anchor: anchorWed, expression: "morning", timezone: "UTC",
			utc: "2026-02-18T09:00:00+00:00",
		},
		{
			name: "noon", anchor: anchorWed, expression: "noon", timezone: "UTC",
			utc: "2026-02-18T12:00:00+00:00",
		},
		{
			name: "afternoon", anchor: anchorWed, expression: "afternoon", timezone: "UTC",
			utc: "2026-02-18T13:00:00+00:00",
		},
		{
			name: "evening", anchor: anchorWed, expression: "evening", timezone: "UTC",
			utc: "2026-02-18T18:00:00+00:00",
		},
		{
			name: "night", anchor: anchorWed, expression: "night", timezone: "UTC",
			utc: "2026-02-18T21:00:00+00:00",
		},
		{
			name: "eob", anchor: anchorWed, expression: "eob", timezone: "UTC",
			utc: "2026-02-18T17:00:00+00:00",
		},
		{
			name: "end of day", anchor: anchorWed, expression: "end of day", timezone: "UTC",
			utc: "2026-02-18T17:00:00+00:00",
		},
		{
			name: "start of business", anchor: anchorWed, expression: "start of business", timezone: "UTC",
			utc: "2026-02-18T09:00:00+00:00",
		},
		{
			name: "midnight", anchor: anchorWed, expression: "midnight", timezone: "UTC",
			utc: "2026-02-18T00:00:00+00:00",
		},

		// explicit clock times
		{
			name: "2pm", anchor: anchorWed, expression: "2pm", timezone: "UTC",
			utc: "2026-02-18T14:00:00+00:00",
		},
		{
			name: "2:30pm", anchor: anchorWed, expression: "2:30pm", timezone: "UTC",
			utc: "2026-02-18T14:30:00+00:00",
		},
		{
			name: "24 hour clock", anchor: anchorWed, expression: "14:00", timezone: "UTC",
			utc: "2026-02-18T14:00:00+00:00",
		},
		{
			name: "12am is midnight", anchor: anchorWed, expression: "12am", timezone: "UTC",
			utc: "2026-02-18T00:00:00+00:00",
		},
		{
			name: "12pm is noon", anchor: anchorWed, expression: "12pm", timezone: "UTC",
			utc: "2026-02-18T12:00:00+00:00",
		},

		// natural and compact offsets
		{
			name: "in 2 hours", anchor: anchorWed, expression: "in 2 hours", timezone: "UTC",
			utc: "2026-02-18T16:30:00+00:00",
		},
		{
			name: "30 minutes ago", anchor: anchorWed, expression: "30 minutes ago", timezone: "UTC",
			utc: "2026-02-18T14:00:00+00:00",
		},
		{
			name: "in 3 days", anchor: anchorWed, expression: "in 3 days", timezone: "UTC",
			utc: "2026-02-21T14:30:00+00:00",
		},
		{
			name: "a week from now", anchor: anchorWed, expression: "a week from now", timezone: "UTC",
			utc: "2026-02-25T14:30:00+00:00",
		},
		{
			name: "an hour from now", anchor: anchorWed, expression: "an hour from now", timezone: "UTC",
			utc: "2026-02-18T15:30:00+00:00",
		},
		{
			name: "compact positive offset", anchor: anchorWed, expression: "+2h", timezone: "UTC",
			utc: "2026-02-18T16:30:00+00:00",
		},
		{
			name: "compact negative offset", anchor: anchorWed, expression: "-30m", timezone: "UTC",
			utc: "2026-02-18T14:00:00+00:00",
		},
		{
			name: "compact compound offset", anchor: anchorWed, expression: "+1d2h", timezone: "UTC",
			utc: "2026-02-19T16:30:00+00:00",
		},

		// combined forms
		{
			name: "next tuesday at 2pm", anchor: anchorWed, expression: "next Tuesday at 2pm", timezone: "UTC",
			utc: "2026-02-24T14:00:00+00:00",
		},
		{
			name: "tomorrow at 10:30am", anchor: anchorWed, expression: "tomorrow at 10:30am", timezone: "UTC",
			utc: "2026-02-19T10:30:00+00:00",
		},
		{
			name: "tomorrow morning", anchor: anchorWed, expression: "tomorrow morning", timezone: "UTC",
			utc: "2026-02-19T09:00:00+00:00",
		},
		{
			name: "next friday evening", anchor: anchorWed, expression: "next Friday evening", timezone: "UTC",
			utc: "2026-02-20T18:00:00+00:00",
		},
		{
			name: "today at noon", anchor: anchorWed, expression: "today at noon", timezone: "UTC",
			utc: "2026-02-18T12:00:00+00:00",
		},

		// period boundaries
		{
			name: "start of week", anchor: anchorWed, expression: "start of week", timezone: "UTC",
			utc: "2026-02-16T00:00:00+00:00",
		},
		{
			name: "end of week", anchor: anchorWed, expression: "end of week", timezone: "UTC",
			utc: "2026-02-22T23:59:59+00:00",
		},
		{
			name: "start of month", anchor: anchorWed, expression: "start of month", timezone: "UTC",
			utc: "2026-02-01T00:00:00+00:00",
		},
		{
			name: "end of month", anchor: anchorWed, expression: "end of month", timezone: "UTC",
			utc: "2026-02-28T23:59:59+00:00",
		},
		{
			name: "start of quarter", anchor: anchorWed, expression: "start of quarter", timezone: "UTC",
			utc: "2026-01-01T00:00:00+00:00",
		},
		{
			name: "end of quarter", anchor: anchorWed, expression: "end of quarter", timezone: "UTC",
			utc: "2026-03-31T23:59:59+00:00",
		},
		{
			name: "start of year", anchor: anchorWed, expression: "start of year", timezone: "UTC",
			utc: "2026-01-01T00:00:00+00:00",
		},
		{
			name: "end of year", anchor: anchorWed, expression: "end of year", timezone: "UTC",
			utc: "2026-12-31T23:59:59+00:00",
		},
		{
			name: "end of today", anchor: anchorWed, expression: "end of today", timezone: "UTC",
			utc: "2026-02-18T23:59:59+00:00",
		},

		// relative periods land on the period start
		{
			name: "next week", anchor: anchorWed, expression: "next week", timezone: "UTC",
			utc: "2026-02-23T00:00:00+00:00",
		},
		{
			name: "last week", anchor: anchorWed, expression: "last week", timezone: "UTC",
			utc: "2026-02-09T00:00:00+00:00",
		},
		{
			name: "next month", anchor: anchorWed, expression: "next month", timezone: "UTC",
			utc: "2026-03-01T00:00:00+00:00",
		},
		{
			name: "last month", anchor: anchorWed, expression: "last month", timezone: "UTC",
			utc: "2026-01-01T00:00:00+00:00",
		},
		{
			name: "next year", anchor: anchorWed, expression: "next year", timezone: "UTC",
			utc: "2027-01-01T00:00:00+00:00",
		},

		// compound periods
		{
			name: "start of last week", anchor: anchorWed, expression: "start of last week", timezone: "UTC",
			utc: "2026-02-09T00:00:00+00:00",
		},
		{
			name: "end of last week", anchor: anchorWed, expression: "end of last week", timezone: "UTC",
			utc: "2026-02-15T23:59:59+00:00",
		},
		{
			name: "start of next week", anchor: anchorWed, expression: "start of next week", timezone: "UTC",
			utc: "2026-02-23T00:00:00+00:00",
		},
		{
			name: "end of next week", anchor: anchorWed, expression: "end of next week", timezone: "UTC",
			utc: "2026-03-01T23:59:59+00:00",
		},
		{
			name: "start of last month", anchor: anchorWed, expression: "start of last month", timezone: "UTC",
			utc: "2026-01-01T00:00:00+00:00",
		},
		{
			name: "end of last month", anchor: anchorWed, expression: "end of last month", timezone: "UTC",
			utc: "2026-01-31T23:59:59+00:00",
		},
		{
			name: "start of next month", anchor: anchorWed, expression: "start of next month", timezone: "UTC",
			utc: "2026-03-01T00:00:00+00:00",
		},
		{
			name: "end of next month", anchor: anchorWed, expression: "end of next month", timezone: "UTC",
			utc: "2026-03-31T23:59:59+00:00",
		},
		{
			name: "start of next year", anchor: anchorWed, expression: "start of next year", timezone: "UTC",
			utc: "2027-01-01T00:00:00+00:00",
		},
		{
			name: "end of last quarter", anchor: anchorWed, expression: "end of last quarter", timezone: "UTC",
			utc: "2025-12-31T23:59:59+00:00",
		},
		{
			name: "start of next quarter", anchor: anchorWed, expression: "start of next quarter", timezone: "UTC",
			utc: "2026-04-01T00:00:00+00:00",
		},

		// ordinal dates
		{
			name: "first monday of march", anchor: anchorWed, expression: "first Monday of March", timezone: "UTC",
			utc: "2026-03-02T00:00:00+00:00",
		},
		{
			name: "last friday of the month", anchor: anchorWed, expression: "last Friday of the month", timezone: "UTC",
			utc: "2026-02-27T00:00:00+00:00",
		},
		{
			name: "third tuesday of march 2026", anchor: anchorWed, expression: "third Tuesday of March 2026", timezone: "UTC",
			utc: "2026-03-17T00:00:00+00:00",
		},
		{
			name: "last day of september", anchor: anchorWed, expression: "last day of September", timezone: "UTC",
			utc: "2026-09-30T00:00:00+00:00",
		},

		// passthrough
		{
			name: "rfc3339 passthrough preserves the instant", anchor: anchorWed,
			expression: "2026-06-15T10:00:00-04:00", timezone: "UTC",
			utc: "2026-06-15T14:00:00+00:00",
		},
		{
			name: "iso date is start of day in the timezone", anchor: anchorWed,
			expression: "2026-03-15", timezone: "America/New_York",
			utc:   "2026-03-15T04:00:00+00:00",
			local: "2026-03-15T00:00:00-04:00",
		},

		// normalization
		{
			name: "case insensitive", anchor: anchorWed, expression: "Next TUESDAY at 2PM", timezone: "UTC",
			utc: "2026-02-24T14:00:00+00:00",
		},
		{
			name: "surrounding whitespace", anchor: anchorWed, expression: "  tomorrow  ", timezone: "UTC",
			utc: "2026-02-19T00:00:00+00:00",
		},
		{
			name: "leading article stripped", anchor: anchorWed, expression: "the next Monday", timezone: "UTC",
			utc: "2026-02-23T00:00:00+00:00",
		},

		// local time expressions honor the timezone
		{
			name: "2pm in new york", anchor: anchorWed, expression: "2pm", timezone: "America/New_York",
			utc:   "2026-02-18T19:00:00+00:00",
			local: "2026-02-18T14:00:00-05:00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveRelative(tc.anchor, tc.expression, tc.timezone)
			if err != nil {
				t.Fatalf("ResolveRelative(%q, %q): %v", tc.expression, tc.timezone, err)
			}
			if got.ResolvedUTC != tc.utc {
				t.Errorf("resolved_utc = %q, want %q", got.ResolvedUTC, tc.utc)
			}
			if tc.local != "" && got.ResolvedLocal != tc.local {
				t.Errorf("resolved_local = %q, want %q", got.ResolvedLocal, tc.local)
			}
			if got.Timezone != tc.timezone {
				t.Errorf("timezone = %q, want %q", got.Timezone, tc.timezone)
			}
		})
	}
}

func TestResolveRelative_SundayWeekStart(t *testing.T) {
	opts := Options{WeekStart: WeekStartSunday}

	tests := []struct {
		name       string
		expression string
		utc        string
	}{
		{name: "start of week", expression: "start of week", utc: "2026-02-15T00:00:00+00:00"},
		{name: "end of week", expression: "end of week", utc: "2026-02-21T23:59:59+00:00"},
		{name: "start of last week", expression: "start of last week", utc: "2026-02-08T00:00:00+00:00"},
		{name: "next week", expression: "next week", utc: "2026-02-22T00:00:00+00:00"},
		// weekday expressions keep the Monday based tie break regardless
		{name: "next monday unaffected", expression: "next Monday", utc: "2026-02-23T00:00:00+00:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveRelativeWithOptions(anchorWed, tc.expression, "UTC", opts)
			if err != nil {
				t.Fatalf("ResolveRelativeWithOptions(%q): %v", tc.expression, err)
			}
			if got.ResolvedUTC != tc.utc {
				t.Errorf("resolved_utc = %q, want %q", got.ResolvedUTC, tc.utc)
			}
		})
	}
}

func TestResolveRelative_Interpretation(t *testing.T) {
	got, err := ResolveRelative(anchorWed, "next Tuesday at 2pm", "UTC")
	if err != nil {
		t.Fatalf("ResolveRelative: %v", err)
	}
	want := "Tuesday, February 24, 2026 at 2:00 PM UTC"
	if got.Interpretation != want {
		t.Errorf("interpretation = %q, want %q", got.Interpretation, want)
	}
}

func TestResolveRelative_Errors(t *testing.T) {
	t.Run("unparseable expression", func(t *testing.T) {
		_, err := ResolveRelative(anchorWed, "gobbledygook", "UTC")
		if !perr.IsCode(err, perr.ErrorCodeInvalidExpression) {
			t.Fatalf("expected invalid expression code, got %v", err)
		}
		if !strings.Contains(err.Error(), "cannot parse expression") {
			t.Errorf("unexpected message: %v", err)
		}
	})

	t.Run("fifth monday does not exist", func(t *testing.T) {
		// February 2026 has four Mondays
		_, err := ResolveRelative(anchorWed, "fifth Monday of February", "UTC")
		if !perr.IsCode(err, perr.ErrorCodeInvalidExpression) {
			t.Fatalf("expected invalid expression code, got %v", err)
		}
	})

	t.Run("invalid timezone", func(t *testing.T) {
		_, err := ResolveRelative(anchorWed, "now", "Nowhere/Special")
		if !perr.IsCode(err, perr.ErrorCodeInvalidTimezone) {
			t.Fatalf("expected invalid timezone code, got %v", err)
		}
	})

	t.Run("bare number is rejected", func(t *testing.T) {
		_, err := ResolveRelative(anchorWed, "42", "UTC")
		if !perr.IsCode(err, perr.ErrorCodeInvalidExpression) {
			t.Fatalf("expected invalid expression code, got %v", err)
		}
	})
}

func TestResolveRelative_DSTGapAbstains(t *testing.T) {
	// 2:30am on 2026-03-08 does not exist in America/New_York, the clock
	// jumps from 02:00 to 03:00. The explicit time recognizer abstains and
	// the expression falls through to rejection
	gapAnchor := time.Date(2026, time.March, 8, 12, 0, 0, 0, time.UTC)
	_, err := ResolveRelative(gapAnchor, "2:30am", "America/New_York")
	if !perr.IsCode(err, perr.ErrorCodeInvalidExpression) {
		t.Fatalf("expected invalid expression code for DST gap, got %v", err)
	}
}
