package service

import (
	"context"
	"testing"
	"time"

	perr "hourglass/internal/platform/errors"
	"hourglass/internal/services/api/temporal/domain"
)

// fixedClock pins "now" to Wednesday, February 18, 2026 at 14:30 UTC
func fixedClock() time.Time {
	return time.Date(2026, time.February, 18, 14, 30, 0, 0, time.UTC)
}

func TestResolve_UsesClockWhenAnchorOmitted(t *testing.T) {
	s := New(fixedClock)

	got, err := s.Resolve(context.Background(), domain.ResolveInput{
		Expression: "tomorrow",
		Timezone:   "UTC",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := "2026-02-19T00:00:00+00:00"; got.ResolvedUTC != want {
		t.Errorf("resolved_utc = %q, want %q", got.ResolvedUTC, want)
	}
}

func TestResolve_ExplicitAnchorWins(t *testing.T) {
	// clock says February, the anchor says June; the anchor must win
	s := New(fixedClock)

	got, err := s.Resolve(context.Background(), domain.ResolveInput{
		Expression: "tomorrow",
		Timezone:   "UTC",
		Anchor:     "2026-06-10T08:00:00Z",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := "2026-06-11T00:00:00+00:00"; got.ResolvedUTC != want {
		t.Errorf("resolved_utc = %q, want %q", got.ResolvedUTC, want)
	}
}

func TestResolve_BadAnchorIsFieldError(t *testing.T) {
	s := New(fixedClock)

	_, err := s.Resolve(context.Background(), domain.ResolveInput{
		Expression: "tomorrow",
		Timezone:   "UTC",
		Anchor:     "not-a-datetime",
	})
	if !perr.IsCode(err, perr.ErrorCodeInvalidDatetime) {
		t.Fatalf("expected invalid datetime code, got %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "anchor" {
		t.Errorf("expected field anchor on error, got %v", err)
	}
}

func TestResolve_WeekStartOption(t *testing.T) {
	s := New(fixedClock)

	got, err := s.Resolve(context.Background(), domain.ResolveInput{
		Expression: "start of week",
		Timezone:   "UTC",
		WeekStart:  "sunday",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := "2026-02-15T00:00:00+00:00"; got.ResolvedUTC != want {
		t.Errorf("resolved_utc = %q, want %q", got.ResolvedUTC, want)
	}
}

func TestConvertDurationAdjust_PassThrough(t *testing.T) {
	s := New(fixedClock)
	ctx := context.Background()

	conv, err := s.Convert(ctx, domain.ConvertInput{
		Datetime: "2026-03-15T14:00:00Z",
		Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if conv.Local != "2026-03-15T10:00:00-04:00" || !conv.DSTActive {
		t.Errorf("unexpected conversion: %+v", conv)
	}

	dur, err := s.Duration(ctx, domain.DurationInput{
		Start: "2026-03-13T17:00:00Z",
		End:   "2026-03-16T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("Duration: %v", err)
	}
	if dur.TotalSeconds != 230400 || dur.HumanReadable != "2 days, 16 hours" {
		t.Errorf("unexpected duration: %+v", dur)
	}

	adj, err := s.Adjust(ctx, domain.AdjustInput{
		Datetime:   "2026-03-16T10:00:00Z",
		Adjustment: "+2h",
		Timezone:   "UTC",
	})
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if adj.AdjustedUTC != "2026-03-16T12:00:00+00:00" {
		t.Errorf("unexpected adjustment: %+v", adj)
	}
}
