package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/car-service-agent/internal/audit"
	"github.com/BruksfildServices01/car-service-agent/internal/models"
)

var ErrNotFound = errors.New("record not found")

// UserProfile is the editable part of a user row.
type UserProfile struct {
	Name        string
	Surname     string
	Email       string
	PhoneNumber string
}

// CarSpec identifies a car for its owner: the plate plus the specs the
// plate was registered with.
type CarSpec struct {
	LicensePlate string
	Manufacturer string
	Model        string
	Year         int
}

// Repository is the storage port. Every lookup applies the visibility
// scopes; none of the mutations physically remove rows.
type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	// -------- User --------
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetVisibleUser(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	FindContactOwner(
		ctx context.Context,
		email string,
		phone string,
		excludeUserID string,
	) (*models.User, error)
	UpdateUserProfile(
		ctx context.Context,
		userID string,
		profile UserProfile,
		now time.Time,
	) (int64, error)
	MarkUserDeleted(ctx context.Context, userID string, now time.Time) (int64, error)

	// -------- Car --------
	FindVisibleCarByPlate(
		ctx context.Context,
		userID string,
		plate string,
		excludeCarID string,
	) (*models.Car, error)
	FindOrCreateCar(
		ctx context.Context,
		userID string,
		spec CarSpec,
		now time.Time,
	) (*models.Car, bool, error)
	ListVisibleCars(ctx context.Context, userID string) ([]models.Car, error)
	UpdateCar(ctx context.Context, carID string, spec CarSpec, now time.Time) (int64, error)
	MarkCarsDeleted(ctx context.Context, userID string, now time.Time) (int64, error)

	// -------- Appointment --------
	FindVisibleAppointmentOnDate(
		ctx context.Context,
		userID string,
		date string,
		excludeAppointmentID string,
	) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	ListVisibleAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	UpdateAppointment(
		ctx context.Context,
		appointmentID string,
		date string,
		clock string,
		problem string,
		now time.Time,
	) (int64, error)
	CancelAppointmentOnDate(
		ctx context.Context,
		userID string,
		date string,
		now time.Time,
	) (int64, error)
	MarkAppointmentsDeleted(ctx context.Context, userID string, now time.Time) (int64, error)

	// -------- Audit --------
	RecordEvent(ctx context.Context, ev audit.Event) error
}
