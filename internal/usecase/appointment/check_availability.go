package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/car-service-agent/internal/validators"
)

type CheckAvailabilityInput struct {
	Date string
	Time string
}

// Availability is the verdict for one date and time. Reason is empty when
// Valid is true.
type Availability struct {
	Valid  bool
	Reason string
	Now    time.Time
}

// CheckDatetimeAvailability applies the booking rules without touching
// storage.
type CheckDatetimeAvailability struct {
	booking Booking
}

func NewCheckDatetimeAvailability(booking Booking) *CheckDatetimeAvailability {
	return &CheckDatetimeAvailability{booking: booking}
}

func (uc *CheckDatetimeAvailability) Execute(
	_ context.Context,
	in CheckAvailabilityInput,
) (*Availability, error) {

	now := uc.booking.now()
	combined := strings.TrimSpace(in.Date) + "T" + strings.TrimSpace(in.Time)

	_, err := validators.ValidateDateTime(combined, uc.booking.Rules, uc.booking.loc(), now)
	if err != nil {
		if !validators.IsValidation(err) {
			return nil, err
		}
		return &Availability{Reason: err.Error(), Now: now}, nil
	}

	return &Availability{Valid: true, Now: now}, nil
}
