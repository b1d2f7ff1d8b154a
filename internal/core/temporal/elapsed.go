package temporal

// Elapsed is the measured duration between two instants
type Elapsed struct {
	// TotalSeconds is the signed duration (negative when end precedes start)
	TotalSeconds int64 `json:"total_seconds"`
	// Days of the absolute decomposition
	Days int64 `json:"days"`
	// Hours component (0-23)
	Hours int64 `json:"hours"`
	// Minutes component (0-59)
	Minutes int64 `json:"minutes"`
	// Seconds component (0-59)
	Seconds int64 `json:"seconds"`
	// HumanReadable is e.g. "2 days, 3 hours, 15 minutes"
	HumanReadable string `json:"human_readable"`
}

// ComputeDuration measures the elapsed time between two RFC 3339 datetimes
//
// TotalSeconds carries the direction; the day/hour/minute/second breakdown
// is always the absolute value
func ComputeDuration(start, end string) (*Elapsed, error) {
	s, err := parseInstant(start)
	if err != nil {
		return nil, err
	}
	e, err := parseInstant(end)
	if err != nil {
		return nil, err
	}

	total := e.Unix() - s.Unix()
	abs := total
	if abs < 0 {
		abs = -abs
	}

	days := abs / 86400
	rem := abs % 86400
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	seconds := rem % 60

	return &Elapsed{
		TotalSeconds:  total,
		Days:          days,
		Hours:         hours,
		Minutes:       minutes,
		Seconds:       seconds,
		HumanReadable: humanDuration(days, hours, minutes, seconds),
	}, nil
}
