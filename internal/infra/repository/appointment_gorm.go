package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/car-service-agent/internal/audit"
	domain "github.com/BruksfildServices01/car-service-agent/internal/domain/appointment"
	"github.com/BruksfildServices01/car-service-agent/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(repo domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// first maps gorm's not-found onto the domain sentinel.
func first[T any](q *gorm.DB) (*T, error) {
	var out T
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	userID string,
) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).
		Where("users.id = ?", userID))
}

func (r *AppointmentGormRepository) GetVisibleUser(
	ctx context.Context,
	userID string,
) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).
		Scopes(domain.VisibleUsers).
		Where("users.id = ?", userID))
}

// CreateUser inserts a new row; an existing id, deleted or not, is an error.
func (r *AppointmentGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AppointmentGormRepository) FindContactOwner(
	ctx context.Context,
	email string,
	phone string,
	excludeUserID string,
) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).
		Scopes(domain.VisibleUsers).
		Where("users.id <> ?", excludeUserID).
		Where("users.email = ? OR users.phone_number = ?", email, phone))
}

func (r *AppointmentGormRepository) UpdateUserProfile(
	ctx context.Context,
	userID string,
	profile domain.UserProfile,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Scopes(domain.VisibleUsers).
		Where("users.id = ?", userID).
		Updates(map[string]any{
			"name":         profile.Name,
			"surname":      profile.Surname,
			"email":        profile.Email,
			"phone_number": profile.PhoneNumber,
			"date_updated": now,
		})
	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) MarkUserDeleted(
	ctx context.Context,
	userID string,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Scopes(domain.VisibleUsers).
		Where("users.id = ?", userID).
		Updates(map[string]any{
			"status":       string(domain.UserDeleted),
			"date_deleted": now,
		})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Car
// --------------------------------------------------

func (r *AppointmentGormRepository) FindVisibleCarByPlate(
	ctx context.Context,
	userID string,
	plate string,
	excludeCarID string,
) (*models.Car, error) {

	q := r.db.WithContext(ctx).
		Scopes(domain.VisibleCars).
		Where("cars.user_id = ? AND cars.license_plate = ?", userID, plate)
	if excludeCarID != "" {
		q = q.Where("cars.id <> ?", excludeCarID)
	}
	return first[models.Car](q)
}

// FindOrCreateCar returns the owner's visible car for spec, creating it when
// the plate is not registered. The bool is true when a row was inserted.
func (r *AppointmentGormRepository) FindOrCreateCar(
	ctx context.Context,
	userID string,
	spec domain.CarSpec,
	now time.Time,
) (*models.Car, bool, error) {

	existing, err := r.FindVisibleCarByPlate(ctx, userID, spec.LicensePlate, "")
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	reuse, err := domain.ResolveCar(existing, spec)
	if err != nil {
		return nil, false, err
	}
	if reuse {
		return existing, false, nil
	}

	car := &models.Car{
		ID:             uuid.NewString(),
		LicensePlate:   spec.LicensePlate,
		Manufacturer:   spec.Manufacturer,
		Model:          spec.Model,
		Year:           spec.Year,
		Status:         string(domain.CarActive),
		UserID:         userID,
		DateRegistered: now,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(car).Error; err != nil {
		return nil, false, fmt.Errorf("create car: %w", err)
	}
	return car, true, nil
}

func (r *AppointmentGormRepository) ListVisibleCars(
	ctx context.Context,
	userID string,
) ([]models.Car, error) {

	var cars []models.Car
	if err := r.db.WithContext(ctx).
		Scopes(domain.VisibleCars).
		Where("cars.user_id = ?", userID).
		Order("cars.date_registered ASC").
		Order("cars.id ASC").
		Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *AppointmentGormRepository) UpdateCar(
	ctx context.Context,
	carID string,
	spec domain.CarSpec,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Scopes(domain.VisibleCars).
		Where("cars.id = ?", carID).
		Updates(map[string]any{
			"license_plate": spec.LicensePlate,
			"manufacturer":  spec.Manufacturer,
			"model":         spec.Model,
			"year":          spec.Year,
			"date_updated":  now,
		})
	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) MarkCarsDeleted(
	ctx context.Context,
	userID string,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("cars.user_id = ? AND cars.status <> ?", userID, string(domain.CarDeleted)).
		Updates(map[string]any{
			"status":       string(domain.CarDeleted),
			"date_deleted": now,
		})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) FindVisibleAppointmentOnDate(
	ctx context.Context,
	userID string,
	date string,
	excludeAppointmentID string,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Scopes(domain.VisibleAppointments).
		Where("appointments.user_id = ? AND appointments.appointment_date = ?", userID, date)
	if excludeAppointmentID != "" {
		q = q.Where("appointments.id <> ?", excludeAppointmentID)
	}
	return first[models.Appointment](q)
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
}

func (r *AppointmentGormRepository) ListVisibleAppointments(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Scopes(domain.VisibleAppointments).
		Where("appointments.user_id = ?", userID).
		Order("appointments.appointment_date ASC").
		Order("appointments.appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	appointmentID string,
	date string,
	clock string,
	problem string,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Scopes(domain.VisibleAppointments).
		Where("appointments.id = ?", appointmentID).
		Updates(map[string]any{
			"appointment_date": date,
			"appointment_time": clock,
			"problem":          problem,
			"date_updated":     now,
		})
	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) CancelAppointmentOnDate(
	ctx context.Context,
	userID string,
	date string,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Scopes(domain.VisibleAppointments).
		Where("appointments.user_id = ? AND appointments.appointment_date = ?", userID, date).
		Updates(map[string]any{
			"status":        string(domain.StatusCanceled),
			"date_canceled": now,
		})
	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) MarkAppointmentsDeleted(
	ctx context.Context,
	userID string,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointments.user_id = ? AND appointments.status <> ?", userID, string(domain.StatusDeleted)).
		Updates(map[string]any{
			"status":       string(domain.StatusDeleted),
			"date_deleted": now,
		})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *AppointmentGormRepository) RecordEvent(
	ctx context.Context,
	ev audit.Event,
) error {
	return audit.New(r.db.WithContext(ctx)).Log(ev)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
