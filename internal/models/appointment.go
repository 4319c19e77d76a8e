package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Date is YYYY-MM-DD and Time is HH:MM, both in the service timezone.
	Date    string `gorm:"column:appointment_date;size:10;not null;index" json:"date"`
	Time    string `gorm:"column:appointment_time;size:5;not null" json:"time"`
	Problem string `gorm:"type:text;not null" json:"problem"`
	Status  string `gorm:"size:10;not null;default:'scheduled';index" json:"status"`

	UserID string `gorm:"size:64;not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CarID string `gorm:"size:36;not null;index" json:"car_id"`
	Car   Car    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	DateScheduled time.Time  `gorm:"not null" json:"date_scheduled"`
	DateCanceled  *time.Time `json:"date_canceled"`
	DateUpdated   *time.Time `json:"date_updated"`
	DateDeleted   *time.Time `json:"date_deleted"`
}

// DateTime is the combined YYYY-MM-DDTHH:MM form.
func (a *Appointment) DateTime() string {
	return a.Date + "T" + a.Time
}
