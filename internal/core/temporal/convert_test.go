package temporal

import (
	"testing"

	perr "hourglass/internal/platform/errors"
)

func TestConvertTimezone_Table(t *testing.T) {
	tests := []struct {
		name      string
		datetime  string
		timezone  string
		utc       string
		local     string
		utcOffset string
		dstActive bool
	}{
		{
			name:      "utc to eastern in daylight time",
			datetime:  "2026-03-15T14:00:00Z",
			timezone:  "America/New_York",
			utc:       "2026-03-15T14:00:00+00:00",
			local:     "2026-03-15T10:00:00-04:00",
			utcOffset: "-04:00",
			dstActive: true,
		},
		{
			name:      "eastern offset input to pacific",
			datetime:  "2026-01-15T14:00:00-05:00",
			timezone:  "America/Los_Angeles",
			utc:       "2026-01-15T19:00:00+00:00",
			local:     "2026-01-15T11:00:00-08:00",
			utcOffset: "-08:00",
			dstActive: false,
		},
		{
			name:      "winter eastern is standard time",
			datetime:  "2026-01-15T12:00:00Z",
			timezone:  "America/New_York",
			utc:       "2026-01-15T12:00:00+00:00",
			local:     "2026-01-15T07:00:00-05:00",
			utcOffset: "-05:00",
			dstActive: false,
		},
		{
			name:      "after fall back is standard time",
			datetime:  "2026-11-02T12:00:00Z",
			timezone:  "America/New_York",
			utc:       "2026-11-02T12:00:00+00:00",
			local:     "2026-11-02T07:00:00-05:00",
			utcOffset: "-05:00",
			dstActive: false,
		},
		{
			name:      "tokyo has no dst",
			datetime:  "2026-06-15T12:00:00Z",
			timezone:  "Asia/Tokyo",
			utc:       "2026-06-15T12:00:00+00:00",
			local:     "2026-06-15T21:00:00+09:00",
			utcOffset: "+09:00",
			dstActive: false,
		},
		{
			name:      "summer eastern is daylight time",
			datetime:  "2026-07-15T12:00:00Z",
			timezone:  "America/New_York",
			utc:       "2026-07-15T12:00:00+00:00",
			local:     "2026-07-15T08:00:00-04:00",
			utcOffset: "-04:00",
			dstActive: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConvertTimezone(tc.datetime, tc.timezone)
			if err != nil {
				t.Fatalf("ConvertTimezone(%q, %q): %v", tc.datetime, tc.timezone, err)
			}
			if got.UTC != tc.utc {
				t.Errorf("utc = %q, want %q", got.UTC, tc.utc)
			}
			if got.Local != tc.local {
				t.Errorf("local = %q, want %q", got.Local, tc.local)
			}
			if got.Timezone != tc.timezone {
				t.Errorf("timezone = %q, want %q", got.Timezone, tc.timezone)
			}
			if got.UTCOffset != tc.utcOffset {
				t.Errorf("utc_offset = %q, want %q", got.UTCOffset, tc.utcOffset)
			}
			if got.DSTActive != tc.dstActive {
				t.Errorf("dst_active = %v, want %v", got.DSTActive, tc.dstActive)
			}
		})
	}
}

func TestConvertTimezone_Errors(t *testing.T) {
	t.Run("invalid timezone", func(t *testing.T) {
		_, err := ConvertTimezone("2026-03-15T14:00:00Z", "Invalid/Zone")
		if !perr.IsCode(err, perr.ErrorCodeInvalidTimezone) {
			t.Fatalf("expected invalid timezone code, got %v", err)
		}
	})

	t.Run("empty timezone rejected", func(t *testing.T) {
		_, err := ConvertTimezone("2026-03-15T14:00:00Z", "")
		if !perr.IsCode(err, perr.ErrorCodeInvalidTimezone) {
			t.Fatalf("expected invalid timezone code, got %v", err)
		}
	})

	t.Run("host local zone rejected", func(t *testing.T) {
		_, err := ConvertTimezone("2026-03-15T14:00:00Z", "Local")
		if !perr.IsCode(err, perr.ErrorCodeInvalidTimezone) {
			t.Fatalf("expected invalid timezone code, got %v", err)
		}
	})

	t.Run("invalid datetime", func(t *testing.T) {
		_, err := ConvertTimezone("not-a-datetime", "America/New_York")
		if !perr.IsCode(err, perr.ErrorCodeInvalidDatetime) {
			t.Fatalf("expected invalid datetime code, got %v", err)
		}
	})
}
