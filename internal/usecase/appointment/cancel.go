package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/car-service-agent/internal/audit"
	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/validators"
)

type CancelAppointmentInput struct {
	UserID string
	Date   string
}

type CancelAppointment struct {
	repo    domain.Repository
	booking Booking
}

func NewCancelAppointment(
	repo domain.Repository,
	booking Booking,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		booking: booking,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) error {

	if err := validators.CheckRequiredFields(
		validators.F("appointment date", in.Date),
	); err != nil {
		return err
	}

	date := strings.TrimSpace(in.Date)
	if _, err := time.Parse(uc.booking.Rules.DateFormat, date); err != nil {
		return &validators.ValidationError{Message: "Invalid appointment date format. Date must be YYYY-MM-DD"}
	}

	now := uc.booking.now()

	return uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.FindVisibleAppointmentOnDate(ctx, in.UserID, date, "")
		if notFound(err) {
			return domain.ErrAppointmentNotFound
		}
		if err != nil {
			return fmt.Errorf("find appointment: %w", err)
		}

		n, err := tx.CancelAppointmentOnDate(ctx, in.UserID, date, now)
		if err != nil {
			return fmt.Errorf("cancel appointment: %w", err)
		}
		if n == 0 {
			return domain.ErrAppointmentNotFound
		}

		return tx.RecordEvent(ctx, audit.Event{
			UserID:   in.UserID,
			Action:   audit.ActionAppointmentCanceled,
			Entity:   "appointment",
			EntityID: ap.ID,
			Metadata: map[string]string{"date": date},
		})
	})
}
