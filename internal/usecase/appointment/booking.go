package appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/car-service-agent/internal/config"
	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/timezone"
	"github.com/BruksfildServices01/car-service-agent/internal/validators"
)

// Booking carries the rules and the clock every datetime check runs
// against.
type Booking struct {
	Rules config.BookingConfig
	Loc   *time.Location
	Now   func() time.Time
}

func NewBooking(cfg *config.Config) Booking {
	return Booking{
		Rules: cfg.Booking,
		Loc:   timezone.Location(cfg.ServiceTimezone),
		Now:   timezone.Clock(cfg.ServiceTimezone),
	}
}

func (b Booking) now() time.Time {
	if b.Now == nil {
		return time.Now().In(b.loc())
	}
	return b.Now().In(b.loc())
}

func (b Booking) loc() *time.Location {
	if b.Loc == nil {
		return time.UTC
	}
	return b.Loc
}

// ======================================================
// Shared input
// ======================================================

// BookingFields is the profile, appointment and car data both schedule and
// update receive.
type BookingFields struct {
	Name        string
	Surname     string
	Email       string
	PhoneNumber string

	Date    string
	Time    string
	Problem string

	LicensePlate string
	Manufacturer string
	Model        string
	Year         string
}

// validBooking is BookingFields after validation and normalization.
type validBooking struct {
	profile domain.UserProfile
	car     domain.CarSpec
	date    string
	clock   string
	problem string
}

func (b Booking) validate(in BookingFields, now time.Time) (*validBooking, error) {
	combined := strings.TrimSpace(in.Date) + "T" + strings.TrimSpace(in.Time)

	if err := validators.CheckRequiredFields(
		validators.F("name", in.Name),
		validators.F("surname", in.Surname),
		validators.F("email", in.Email),
		validators.F("phone number", in.PhoneNumber),
		validators.F("appointment date", in.Date),
		validators.F("appointment time", in.Time),
		validators.F("appointment problem", in.Problem),
		validators.F("car license plate", in.LicensePlate),
		validators.F("car manufacturer", in.Manufacturer),
		validators.F("car model", in.Model),
		validators.F("car year", in.Year),
	); err != nil {
		return nil, err
	}

	target, err := validators.ValidateDateTime(combined, b.Rules, b.loc(), now)
	if err != nil {
		return nil, err
	}

	if err := validators.ValidateEmail(in.Email); err != nil {
		return nil, err
	}

	phone, err := validators.ValidatePhone(in.PhoneNumber)
	if err != nil {
		return nil, err
	}

	year, err := validators.ValidateCarYear(in.Year, now)
	if err != nil {
		return nil, err
	}

	return &validBooking{
		profile: domain.UserProfile{
			Name:        strings.TrimSpace(in.Name),
			Surname:     strings.TrimSpace(in.Surname),
			Email:       strings.ToLower(strings.TrimSpace(in.Email)),
			PhoneNumber: phone,
		},
		car: domain.CarSpec{
			LicensePlate: NormalizePlate(in.LicensePlate),
			Manufacturer: strings.TrimSpace(in.Manufacturer),
			Model:        strings.TrimSpace(in.Model),
			Year:         year,
		},
		date:    target.Format(b.Rules.DateFormat),
		clock:   target.Format(b.Rules.TimeFormat),
		problem: strings.TrimSpace(in.Problem),
	}, nil
}

// NormalizePlate upper-cases a plate and drops surrounding space.
func NormalizePlate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func notFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
