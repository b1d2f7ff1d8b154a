package temporal

// Conversion is the result of re-expressing an instant in a target timezone
type Conversion struct {
	// UTC is the instant in UTC (RFC 3339)
	UTC string `json:"utc"`
	// Local is the same instant in the target timezone (RFC 3339 with offset)
	Local string `json:"local"`
	// Timezone is the IANA name that was used
	Timezone string `json:"timezone"`
	// UTCOffset is the offset at this instant, e.g. "-05:00"
	UTCOffset string `json:"utc_offset"`
	// DSTActive reports whether daylight saving is in effect at this instant
	DSTActive bool `json:"dst_active"`
}

// ConvertTimezone re-expresses an RFC 3339 datetime in the target IANA timezone
//
// The instant is unchanged, only the representation moves. Returns an
// invalid datetime error for unparseable input and an invalid timezone
// error for unknown zone names
func ConvertTimezone(datetime, targetTimezone string) (*Conversion, error) {
	t, err := parseInstant(datetime)
	if err != nil {
		return nil, err
	}
	loc, err := parseLocation(targetTimezone)
	if err != nil {
		return nil, err
	}

	local := t.In(loc)

	return &Conversion{
		UTC:       t.Format(rfc3339Offset),
		Local:     local.Format(rfc3339Offset),
		Timezone:  targetTimezone,
		UTCOffset: formatUTCOffset(local),
		DSTActive: dstActive(t, loc),
	}, nil
}
