package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/car-service-agent/internal/config"
	"github.com/BruksfildServices01/car-service-agent/internal/db/dbtest"
	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/infra/repository"
	"github.com/BruksfildServices01/car-service-agent/internal/models"
	"github.com/BruksfildServices01/car-service-agent/internal/timezone"
)

// Monday 08:00
var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func testBooking() Booking {
	return Booking{
		Rules: config.DefaultBooking(),
		Loc:   time.UTC,
		Now:   timezone.Fixed(testNow),
	}
}

type fixture struct {
	db   *gorm.DB
	repo domain.Repository

	schedule *ScheduleAppointment
	update   *UpdateUserData
	cancel   *CancelAppointment
	delete   *DeleteUser
	check    *CheckUserData
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	return newFixtureWithRepo(db, repository.NewAppointmentGormRepository(db))
}

func newFixtureWithRepo(db *gorm.DB, repo domain.Repository) *fixture {
	b := testBooking()
	return &fixture{
		db:       db,
		repo:     repo,
		schedule: NewScheduleAppointment(repo, b),
		update:   NewUpdateUserData(repo, b),
		cancel:   NewCancelAppointment(repo, b),
		delete:   NewDeleteUser(repo, b),
		check:    NewCheckUserData(repo),
	}
}

func bookingFields(date string) BookingFields {
	return BookingFields{
		Name:         "John",
		Surname:      "Doe",
		Email:        "John.Doe@example.com",
		PhoneNumber:  "+1 415-555-1234",
		Date:         date,
		Time:         "10:00",
		Problem:      "Brakes squeal",
		LicensePlate: "abc123",
		Manufacturer: "Toyota",
		Model:        "Corolla",
		Year:         "2015",
	}
}

func scheduleInput(userID, date string) ScheduleAppointmentInput {
	return ScheduleAppointmentInput{UserID: userID, BookingFields: bookingFields(date)}
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func (f *fixture) userData(t *testing.T, userID string) *UserData {
	t.Helper()
	data, err := f.check.Execute(context.Background(), CheckUserDataInput{UserID: userID})
	if err != nil {
		t.Fatalf("check user data: %v", err)
	}
	return data
}

var errStorage = errors.New("storage unavailable")

// failingRepo breaks CreateAppointment inside every transaction.
type failingRepo struct {
	domain.Repository
}

func (r failingRepo) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.Repository.Transaction(ctx, func(tx domain.Repository) error {
		return fn(failingRepo{Repository: tx})
	})
}

func (r failingRepo) CreateAppointment(context.Context, *models.Appointment) error {
	return errStorage
}
