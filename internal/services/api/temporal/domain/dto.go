// Package domain holds DTOs for temporal http and service contracts
package domain

// ConvertInput asks for an instant re-expressed in a target timezone
type ConvertInput struct {
	Datetime string `json:"datetime" validate:"required" example:"2026-03-15T14:00:00Z"`
	Timezone string `json:"timezone" validate:"required" example:"America/New_York"`
}

// Converted is an instant expressed in a target timezone with zone metadata
type Converted struct {
	UTC       string `json:"utc"        example:"2026-03-15T14:00:00+00:00"`
	Local     string `json:"local"      example:"2026-03-15T10:00:00-04:00"`
	Timezone  string `json:"timezone"   example:"America/New_York"`
	UTCOffset string `json:"utc_offset" example:"-04:00"`
	DSTActive bool   `json:"dst_active" example:"true"`
}

// DurationInput asks for the elapsed time between two instants
type DurationInput struct {
	Start string `json:"start" validate:"required" example:"2026-03-13T17:00:00Z"`
	End   string `json:"end"   validate:"required" example:"2026-03-16T09:00:00Z"`
}

// Duration is a signed total with an absolute breakdown
type Duration struct {
	TotalSeconds  int64  `json:"total_seconds"  example:"230400"`
	Days          int64  `json:"days"           example:"2"`
	Hours         int64  `json:"hours"          example:"16"`
	Minutes       int64  `json:"minutes"        example:"0"`
	Seconds       int64  `json:"seconds"        example:"0"`
	HumanReadable string `json:"human_readable" example:"2 days, 16 hours"`
}

// AdjustInput asks for a timestamp shifted by a signed duration
// day and week components preserve the local wall clock across DST
type AdjustInput struct {
	Datetime   string `json:"datetime"   validate:"required" example:"2026-03-07T22:00:00-05:00"`
	Adjustment string `json:"adjustment" validate:"required" example:"+1d"`
	Timezone   string `json:"timezone"   validate:"required" example:"America/New_York"`
}

// Adjusted is the shifted timestamp in both representations
type Adjusted struct {
	Original          string `json:"original"           example:"2026-03-07T22:00:00-05:00"`
	AdjustedUTC       string `json:"adjusted_utc"       example:"2026-03-09T02:00:00+00:00"`
	AdjustedLocal     string `json:"adjusted_local"     example:"2026-03-08T22:00:00-04:00"`
	AdjustmentApplied string `json:"adjustment_applied" example:"+1d"`
}

// ResolveInput asks for a relative expression resolved to an absolute datetime
// Anchor is optional; when omitted the service samples the current instant once
type ResolveInput struct {
	Expression string `json:"expression"           validate:"required" example:"next Tuesday at 2pm"`
	Timezone   string `json:"timezone"             validate:"required" example:"America/New_York"`
	Anchor     string `json:"anchor,omitempty"     validate:"omitempty" example:"2026-02-18T14:30:00Z"`
	WeekStart  string `json:"week_start,omitempty" validate:"omitempty,oneof=monday sunday" example:"monday"`
}

// Resolved is an absolute datetime with a human readable interpretation
type Resolved struct {
	ResolvedUTC    string `json:"resolved_utc"   example:"2026-02-24T19:00:00+00:00"`
	ResolvedLocal  string `json:"resolved_local" example:"2026-02-24T14:00:00-05:00"`
	Timezone       string `json:"timezone"       example:"America/New_York"`
	Interpretation string `json:"interpretation" example:"Tuesday, February 24, 2026 at 2:00 PM EST"`
}
