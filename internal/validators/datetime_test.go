package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/car-service-agent/internal/config"
)

// Monday 08:00
var now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func validate(combined string) (time.Time, error) {
	return ValidateDateTime(combined, config.DefaultBooking(), time.UTC, now)
}

func TestValidateDateTime_Accepts(t *testing.T) {
	for _, s := range []string{
		"2026-03-17T10:00", // Tuesday two weeks out
		"2026-03-02T10:00", // exactly the minimum lead
		"2026-03-03T09:00", // opening
		"2026-03-03T17:30", // last start
		"2026-05-01T10:00", // last day of the window
	} {
		got, err := validate(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, got.Format("2006-01-02T15:04"))
	}
}

func TestValidateDateTime_RejectsOneRule(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		contains string
	}{
		{"format with space", "2026-03-03 10:00", "Invalid date or time format"},
		{"bad month", "2026-13-03T10:00", "Invalid date or time format"},
		{"too soon", "2026-03-02T09:30", "at least 2 hours in advance"},
		{"past reports lead time first", "2026-03-01T10:00", "at least 2 hours in advance"},
		{"beyond window", "2026-05-04T10:00", "more than 60 days in advance"},
		{"before opening", "2026-03-03T08:30", "from 09:00 to 18:00"},
		{"at closing", "2026-03-03T18:00", "from 09:00 to 18:00"},
		{"after last start", "2026-03-03T17:45", "last appointment starts at 17:30"},
		{"saturday", "2026-03-07T10:00", "weekends"},
		{"sunday", "2026-03-08T10:00", "weekends"},
		{"quarter hour", "2026-03-03T10:15", "every 30 minutes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validate(tc.in)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestValidateDateTime_UsesServiceLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 08:00 UTC is midnight in Los Angeles
	got, err := ValidateDateTime("2026-03-03T09:00", config.DefaultBooking(), loc, now)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
}

func TestValidateDateTime_BadRules(t *testing.T) {
	rules := config.DefaultBooking()
	rules.OpenTime = "nine"

	_, err := ValidateDateTime("2026-03-17T10:00", rules, time.UTC, now)
	require.Error(t, err)
	assert.False(t, IsValidation(err))
}
