package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/models"
)

type CheckUserDataInput struct {
	UserID string
}

// UserData is what a visible-rows read returns for one owner. User is nil
// when the owner is not registered or was deleted.
type UserData struct {
	User         *models.User
	Appointments []models.Appointment
	Cars         []models.Car
}

type CheckUserData struct {
	repo domain.Repository
}

func NewCheckUserData(repo domain.Repository) *CheckUserData {
	return &CheckUserData{repo: repo}
}

func (uc *CheckUserData) Execute(
	ctx context.Context,
	in CheckUserDataInput,
) (*UserData, error) {

	var out UserData

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		user, err := tx.GetVisibleUser(ctx, in.UserID)
		if notFound(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		out.User = user

		if out.Appointments, err = tx.ListVisibleAppointments(ctx, in.UserID); err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		if out.Cars, err = tx.ListVisibleCars(ctx, in.UserID); err != nil {
			return fmt.Errorf("list cars: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}
