package models

import "time"

// User is keyed by the id the agent session supplies; it is never
// physically removed, deletion is a status change.
type User struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Surname     string `gorm:"size:100;not null" json:"surname"`
	Email       string `gorm:"size:320;not null;index:idx_users_email_active,unique,where:status <> 'deleted'" json:"email"`
	PhoneNumber string `gorm:"size:16;not null;index:idx_users_phone_active,unique,where:status <> 'deleted'" json:"phone_number"`
	Status      string `gorm:"size:10;not null;default:'active';index" json:"status"`

	DateRegistered time.Time  `gorm:"not null" json:"date_registered"`
	DateUpdated    *time.Time `json:"date_updated"`
	DateDeleted    *time.Time `json:"date_deleted"`
}
