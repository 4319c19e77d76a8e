package audit

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/car-service-agent/internal/models"
)

const (
	ActionAppointmentScheduled = "appointment_scheduled"
	ActionUserDataUpdated      = "user_data_updated"
	ActionAppointmentCanceled  = "appointment_canceled"
	ActionUserDeleted          = "user_deleted"
)

type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Logger writes audit rows through whatever handle it was built with.
// Build it from a transaction handle to make the row part of the change it
// records.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		b, err := json.Marshal(ev.Metadata)
		if err != nil {
			return fmt.Errorf("audit: encode metadata: %w", err)
		}
		metaJSON = string(b)
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&row).Error
}
