package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/car-service-agent/internal/httperr"
)

const (
	CodeSameDayConflict     = "same_day_conflict"
	CodePlateConflict       = "plate_conflict"
	CodeContactConflict     = "contact_conflict"
	CodeUserNotFound        = "user_not_found"
	CodeUserDeleted         = "user_deleted"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeCarNotFound         = "car_not_found"
)

var (
	ErrPlateConflict = httperr.NewBusiness(
		CodePlateConflict,
		"A car with the same license plate but different details (manufacturer, model, year) already exists.",
	)
	ErrContactConflict = httperr.NewBusiness(
		CodeContactConflict,
		"Another user is already registered with the same email address or phone number.",
	)
	ErrUserNotFound = httperr.NewBusiness(
		CodeUserNotFound,
		"No user found.",
	)
	ErrUserDeleted = httperr.NewBusiness(
		CodeUserDeleted,
		"This user was deleted and cannot book new appointments.",
	)
	ErrPhoneMismatch = httperr.NewBusiness(
		CodeUserNotFound,
		"No user found with the given previous phone number.",
	)
	ErrUserNotRegistered = httperr.NewBusiness(
		CodeUserNotFound,
		"No user with such id was found.",
	)
	ErrAppointmentNotFound = httperr.NewBusiness(
		CodeAppointmentNotFound,
		"No appointments with such user or appointment credentials were found.",
	)
	ErrCarNotFound = httperr.NewBusiness(
		CodeCarNotFound,
		"No cars found.",
	)
)

// SameDayConflict reports the date of the appointment already held.
func SameDayConflict(date string) error {
	return httperr.NewBusiness(
		CodeSameDayConflict,
		fmt.Sprintf("An appointment with the same date (%s) already exists. You can make only one appointment a day.", date),
	)
}
