package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/car-service-agent/internal/audit"
	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/validators"
)

type UpdateUserDataInput struct {
	UserID string
	BookingFields

	// rows to change are located by these, never by the new values
	PreviousPhoneNumber  string
	PreviousDate         string
	PreviousLicensePlate string
}

type UpdateUserData struct {
	repo    domain.Repository
	booking Booking
}

func NewUpdateUserData(
	repo domain.Repository,
	booking Booking,
) *UpdateUserData {
	return &UpdateUserData{
		repo:    repo,
		booking: booking,
	}
}

// Execute rewrites the user's profile, one appointment and one car in a
// single transaction. Any missing row rolls the whole change back.
func (uc *UpdateUserData) Execute(
	ctx context.Context,
	in UpdateUserDataInput,
) error {

	now := uc.booking.now()

	if err := validators.CheckRequiredFields(
		validators.F("previous phone number", in.PreviousPhoneNumber),
		validators.F("previous appointment date", in.PreviousDate),
		validators.F("previous car license plate", in.PreviousLicensePlate),
	); err != nil {
		return err
	}

	v, err := uc.booking.validate(in.BookingFields, now)
	if err != nil {
		return err
	}

	prevDate := strings.TrimSpace(in.PreviousDate)
	prevPlate := NormalizePlate(in.PreviousLicensePlate)

	return uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// Locate
		// --------------------------------------------------
		user, err := tx.GetVisibleUser(ctx, in.UserID)
		if notFound(err) {
			return domain.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		ap, err := tx.FindVisibleAppointmentOnDate(ctx, in.UserID, prevDate, "")
		if notFound(err) {
			return domain.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("find appointment: %w", err)
		}

		car, err := tx.FindVisibleCarByPlate(ctx, in.UserID, prevPlate, "")
		if notFound(err) {
			return domain.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("find car: %w", err)
		}

		if validators.CanonicalPhone(in.PreviousPhoneNumber) != validators.CanonicalPhone(user.PhoneNumber) {
			return domain.ErrPhoneMismatch
		}

		// --------------------------------------------------
		// Invariants for the new values
		// --------------------------------------------------
		other, err := tx.FindVisibleAppointmentOnDate(ctx, in.UserID, v.date, ap.ID)
		if err == nil {
			return domain.SameDayConflict(other.Date)
		}
		if !notFound(err) {
			return fmt.Errorf("check same-day appointment: %w", err)
		}

		if _, err := tx.FindVisibleCarByPlate(ctx, in.UserID, v.car.LicensePlate, car.ID); err == nil {
			return domain.ErrPlateConflict
		} else if !notFound(err) {
			return fmt.Errorf("check plate: %w", err)
		}

		if _, err := tx.FindContactOwner(ctx, v.profile.Email, v.profile.PhoneNumber, user.ID); err == nil {
			return domain.ErrContactConflict
		} else if !notFound(err) {
			return fmt.Errorf("check contact data: %w", err)
		}

		// --------------------------------------------------
		// Write
		// --------------------------------------------------
		n, err := tx.UpdateUserProfile(ctx, user.ID, v.profile, now)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if n == 0 {
			return domain.ErrUserNotFound
		}

		n, err = tx.UpdateAppointment(ctx, ap.ID, v.date, v.clock, v.problem, now)
		if err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}
		if n == 0 {
			return domain.ErrAppointmentNotFound
		}

		n, err = tx.UpdateCar(ctx, car.ID, v.car, now)
		if err != nil {
			return fmt.Errorf("update car: %w", err)
		}
		if n == 0 {
			return domain.ErrCarNotFound
		}

		return tx.RecordEvent(ctx, audit.Event{
			UserID:   user.ID,
			Action:   audit.ActionUserDataUpdated,
			Entity:   "user",
			EntityID: user.ID,
			Metadata: map[string]string{
				"appointment_id": ap.ID,
				"car_id":         car.ID,
			},
		})
	})
}
