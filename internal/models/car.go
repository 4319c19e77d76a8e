package models

import "time"

type Car struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	LicensePlate string `gorm:"size:12;not null;index" json:"license_plate"`
	Manufacturer string `gorm:"size:100;not null" json:"manufacturer"`
	Model        string `gorm:"size:100;not null" json:"model"`
	Year         int    `gorm:"not null" json:"year"`
	Status       string `gorm:"size:10;not null;default:'active';index" json:"status"`

	UserID string `gorm:"size:64;not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	DateRegistered time.Time  `gorm:"not null" json:"date_registered"`
	DateUpdated    *time.Time `json:"date_updated"`
	DateDeleted    *time.Time `json:"date_deleted"`
}

// SameSpecs reports whether c describes the same vehicle as the given specs.
func (c *Car) SameSpecs(manufacturer, model string, year int) bool {
	return c.Manufacturer == manufacturer && c.Model == model && c.Year == year
}
