package timezone

import "time"

const DefaultTimezone = "America/Los_Angeles"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock returns a now func pinned to the service timezone.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Fixed returns a now func that always reports t; used to make
// datetime rules deterministic.
func Fixed(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}
