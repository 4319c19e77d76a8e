package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/car-service-agent/internal/audit"
	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
)

type DeleteUserInput struct {
	UserID string
}

// DeleteUserResult counts the rows the cascade marked deleted.
type DeleteUserResult struct {
	Appointments int64
	Cars         int64
}

type DeleteUser struct {
	repo    domain.Repository
	booking Booking
}

func NewDeleteUser(
	repo domain.Repository,
	booking Booking,
) *DeleteUser {
	return &DeleteUser{
		repo:    repo,
		booking: booking,
	}
}

// Execute marks the user's appointments, then cars, then the user deleted.
// A user without cars or appointments is still deleted; a user that is not
// visible is an error.
func (uc *DeleteUser) Execute(
	ctx context.Context,
	in DeleteUserInput,
) (*DeleteUserResult, error) {

	now := uc.booking.now()
	var res DeleteUserResult

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetVisibleUser(ctx, in.UserID); notFound(err) {
			return domain.ErrUserNotRegistered
		} else if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		var err error
		if res.Appointments, err = tx.MarkAppointmentsDeleted(ctx, in.UserID, now); err != nil {
			return fmt.Errorf("delete appointments: %w", err)
		}
		if res.Cars, err = tx.MarkCarsDeleted(ctx, in.UserID, now); err != nil {
			return fmt.Errorf("delete cars: %w", err)
		}

		n, err := tx.MarkUserDeleted(ctx, in.UserID, now)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if n == 0 {
			return domain.ErrUserNotRegistered
		}

		return tx.RecordEvent(ctx, audit.Event{
			UserID:   in.UserID,
			Action:   audit.ActionUserDeleted,
			Entity:   "user",
			EntityID: in.UserID,
			Metadata: map[string]int64{
				"appointments": res.Appointments,
				"cars":         res.Cars,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}
