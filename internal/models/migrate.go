package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the users, cars, appointments and
// audit_logs tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Car{},
		&Appointment{},
		&AuditLog{},
	)
}
