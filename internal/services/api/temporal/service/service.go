// Package service contains temporal computation workflows
package service

import (
	"context"
	"time"

	"hourglass/internal/core/temporal"
	perr "hourglass/internal/platform/errors"
	"hourglass/internal/platform/logger"
	"hourglass/internal/services/api/temporal/domain"
)

// Service defines the service contract for temporal computation
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
//
// The clock is sampled exactly once per resolve call and only when the
// caller did not provide an anchor; the engine itself never reads it
type Svc struct {
	clock func() time.Time
	log   *logger.Logger
}

// New creates a new temporal service
// a nil clock falls back to time.Now
func New(clock func() time.Time) *Svc {
	if clock == nil {
		clock = time.Now
	}
	return &Svc{clock: clock, log: logger.Named("temporal")}
}

// Convert re-expresses an instant in a target timezone
func (s *Svc) Convert(_ context.Context, in domain.ConvertInput) (domain.Converted, error) {
	out, err := temporal.ConvertTimezone(in.Datetime, in.Timezone)
	if err != nil {
		return domain.Converted{}, err
	}
	return domain.Converted{
		UTC:       out.UTC,
		Local:     out.Local,
		Timezone:  out.Timezone,
		UTCOffset: out.UTCOffset,
		DSTActive: out.DSTActive,
	}, nil
}

// Duration measures the elapsed time between two instants
func (s *Svc) Duration(_ context.Context, in domain.DurationInput) (domain.Duration, error) {
	out, err := temporal.ComputeDuration(in.Start, in.End)
	if err != nil {
		return domain.Duration{}, err
	}
	return domain.Duration{
		TotalSeconds:  out.TotalSeconds,
		Days:          out.Days,
		Hours:         out.Hours,
		Minutes:       out.Minutes,
		Seconds:       out.Seconds,
		HumanReadable: out.HumanReadable,
	}, nil
}

// Adjust shifts a timestamp by a signed duration
func (s *Svc) Adjust(_ context.Context, in domain.AdjustInput) (domain.Adjusted, error) {
	out, err := temporal.AdjustTimestamp(in.Datetime, in.Adjustment, in.Timezone)
	if err != nil {
		return domain.Adjusted{}, err
	}
	return domain.Adjusted{
		Original:          out.Original,
		AdjustedUTC:       out.AdjustedUTC,
		AdjustedLocal:     out.AdjustedLocal,
		AdjustmentApplied: out.AdjustmentApplied,
	}, nil
}

// Resolve turns a relative expression into an absolute datetime
func (s *Svc) Resolve(_ context.Context, in domain.ResolveInput) (domain.Resolved, error) {
	anchor, err := s.anchorFor(in.Anchor)
	if err != nil {
		return domain.Resolved{}, err
	}

	opts := temporal.Options{WeekStart: temporal.ParseWeekStart(in.WeekStart)}
	out, err := temporal.ResolveRelativeWithOptions(anchor, in.Expression, in.Timezone, opts)
	if err != nil {
		return domain.Resolved{}, err
	}

	s.log.Debug().
		Str("expression", in.Expression).
		Str("resolved_utc", out.ResolvedUTC).
		Msg("resolved relative expression")

	return domain.Resolved{
		ResolvedUTC:    out.ResolvedUTC,
		ResolvedLocal:  out.ResolvedLocal,
		Timezone:       out.Timezone,
		Interpretation: out.Interpretation,
	}, nil
}

// anchorFor parses an explicit anchor or samples the clock once
func (s *Svc) anchorFor(anchor string) (time.Time, error) {
	if anchor == "" {
		return s.clock().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, anchor)
	if err != nil {
		return time.Time{}, perr.WithField(perr.InvalidDatetimef("%q: %v", anchor, err), "anchor")
	}
	return t.UTC(), nil
}
