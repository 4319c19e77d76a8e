package appointment

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/car-service-agent/internal/models"
)

// VisibleUsers keeps users whose status is outside the user invalid set.
func VisibleUsers(db *gorm.DB) *gorm.DB {
	return db.Where("users.status NOT IN ?", InvalidUserStatuses())
}

// VisibleCars keeps cars that are not deleted and whose owner is visible.
func VisibleCars(db *gorm.DB) *gorm.DB {
	return db.
		Where("cars.status NOT IN ?", InvalidCarStatuses()).
		Where("cars.user_id IN (?)", visibleUserIDs(db))
}

// VisibleAppointments keeps scheduled appointments whose car and owner
// are both visible.
func VisibleAppointments(db *gorm.DB) *gorm.DB {
	return db.
		Where("appointments.status NOT IN ?", InvalidAppointmentStatuses()).
		Where("appointments.user_id IN (?)", visibleUserIDs(db)).
		Where("appointments.car_id IN (?)", visibleCarIDs(db))
}

func visibleUserIDs(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&models.User{}).
		Select("users.id").
		Scopes(VisibleUsers)
}

func visibleCarIDs(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Car{}).
		Select("cars.id").
		Scopes(VisibleCars)
}
