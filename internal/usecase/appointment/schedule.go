package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/car-service-agent/internal/audit"
	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleAppointmentInput struct {
	UserID string
	BookingFields
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleAppointment struct {
	repo    domain.Repository
	booking Booking
}

func NewScheduleAppointment(
	repo domain.Repository,
	booking Booking,
) *ScheduleAppointment {
	return &ScheduleAppointment{
		repo:    repo,
		booking: booking,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	in ScheduleAppointmentInput,
) (*models.Appointment, error) {

	now := uc.booking.now()

	v, err := uc.booking.validate(in.BookingFields, now)
	if err != nil {
		return nil, err
	}

	var ap *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// One appointment a day
		// --------------------------------------------------
		existing, err := tx.FindVisibleAppointmentOnDate(ctx, in.UserID, v.date, "")
		if err == nil {
			return domain.SameDayConflict(existing.Date)
		}
		if !notFound(err) {
			return fmt.Errorf("check same-day appointment: %w", err)
		}

		// --------------------------------------------------
		// Plate registered with other specs
		// --------------------------------------------------
		car, err := tx.FindVisibleCarByPlate(ctx, in.UserID, v.car.LicensePlate, "")
		if err != nil && !notFound(err) {
			return fmt.Errorf("check plate: %w", err)
		}
		if _, err := domain.ResolveCar(car, v.car); err != nil {
			return err
		}

		// --------------------------------------------------
		// User (insert if absent)
		// --------------------------------------------------
		if err := ensureUser(ctx, tx, in.UserID, v.profile, now); err != nil {
			return err
		}

		// --------------------------------------------------
		// Car (find or create)
		// --------------------------------------------------
		car, _, err = tx.FindOrCreateCar(ctx, in.UserID, v.car, now)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// Appointment
		// --------------------------------------------------
		ap = &models.Appointment{
			ID:            uuid.NewString(),
			Date:          v.date,
			Time:          v.clock,
			Problem:       v.problem,
			Status:        string(domain.InitialStatus()),
			UserID:        in.UserID,
			CarID:         car.ID,
			DateScheduled: now,
		}
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		return tx.RecordEvent(ctx, audit.Event{
			UserID:   in.UserID,
			Action:   audit.ActionAppointmentScheduled,
			Entity:   "appointment",
			EntityID: ap.ID,
			Metadata: map[string]string{
				"datetime": ap.DateTime(),
				"car_id":   car.ID,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return ap, nil
}

// ensureUser stores the profile when userID is unknown. An existing visible
// profile is left untouched. A deleted id stays deleted and cannot book.
func ensureUser(
	ctx context.Context,
	tx domain.Repository,
	userID string,
	profile domain.UserProfile,
	now time.Time,
) error {

	user, err := tx.GetUser(ctx, userID)
	switch {
	case err == nil && domain.UserVisible(user.Status):
		return nil
	case err == nil:
		return domain.ErrUserDeleted
	case err != nil && !notFound(err):
		return fmt.Errorf("get user: %w", err)
	}

	if _, err := tx.FindContactOwner(ctx, profile.Email, profile.PhoneNumber, userID); err == nil {
		return domain.ErrContactConflict
	} else if !notFound(err) {
		return fmt.Errorf("check contact data: %w", err)
	}

	row := &models.User{
		ID:             userID,
		Name:           profile.Name,
		Surname:        profile.Surname,
		Email:          profile.Email,
		PhoneNumber:    profile.PhoneNumber,
		Status:         string(domain.UserActive),
		DateRegistered: now,
	}
	if err := tx.CreateUser(ctx, row); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
