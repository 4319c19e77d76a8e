package validators

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/car-service-agent/internal/config"
)

// DateTimeLayout joins the configured date and time layouts the way the
// combined appointment value is written: YYYY-MM-DDTHH:MM.
func DateTimeLayout(rules config.BookingConfig) string {
	return rules.DateFormat + "T" + rules.TimeFormat
}

// ValidateDateTime parses combined in loc and checks it against the booking
// rules as of now. The first violated rule decides the message:
// lead time, booking window, past, opening hours, last start, weekend,
// slot granularity.
func ValidateDateTime(
	combined string,
	rules config.BookingConfig,
	loc *time.Location,
	now time.Time,
) (time.Time, error) {

	target, err := time.ParseInLocation(DateTimeLayout(rules), combined, loc)
	if err != nil {
		return time.Time{}, invalid("Invalid date or time format. Date must be YYYY-MM-DD and time must be HH:MM")
	}

	open, err := minuteOfDay(rules.OpenTime)
	if err != nil {
		return time.Time{}, err
	}
	closing, err := minuteOfDay(rules.CloseTime)
	if err != nil {
		return time.Time{}, err
	}
	lastStart, err := minuteOfDay(rules.LastStart)
	if err != nil {
		return time.Time{}, err
	}

	now = now.In(loc)
	clock := target.Hour()*60 + target.Minute()

	if target.Sub(now) < time.Duration(rules.MinLeadMin)*time.Minute {
		return time.Time{}, invalid(
			"Appointments must be scheduled at least %s in advance",
			rules.LeadText(),
		)
	}

	if daysBetween(now, target) > rules.WindowDays {
		return time.Time{}, invalid(
			"Appointments cannot be scheduled more than %d days in advance",
			rules.WindowDays,
		)
	}

	if target.Before(now) {
		return time.Time{}, invalid("Appointments cannot be scheduled in the past")
	}

	if clock < open || clock >= closing {
		return time.Time{}, invalid(
			"Appointments are available only from %s to %s",
			rules.OpenTime, rules.CloseTime,
		)
	}

	if clock > lastStart && clock <= closing {
		return time.Time{}, invalid(
			"Not enough time left that day. The last appointment starts at %s",
			rules.LastStart,
		)
	}

	if wd := target.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return time.Time{}, invalid("Appointments cannot be scheduled on weekends")
	}

	step := rules.SlotStepMin
	if step <= 0 {
		step = 30
	}
	if target.Minute()%step != 0 {
		return time.Time{}, invalid(
			"Appointments start only every %d minutes (e.g. 10:00 or 10:30)",
			step,
		)
	}

	return target, nil
}

func minuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("booking rules: bad clock value %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// daysBetween counts calendar days from a's date to b's date.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
