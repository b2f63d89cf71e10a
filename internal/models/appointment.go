package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment keeps date and time as fixed-width strings (YYYY-MM-DD, HH:MM)
// so that date+time concatenation orders lexicographically.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PatientID uuid.UUID `gorm:"type:uuid;not null;index:idx_appointment_slot" json:"patient_id"`
	Patient   *Patient  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient,omitempty"`

	Date   string `gorm:"size:10;not null;index:idx_appointment_slot" json:"date"`
	Time   string `gorm:"size:5;not null;index:idx_appointment_slot" json:"time"`
	Reason string `gorm:"type:text;not null" json:"reason"`
	Status string `gorm:"size:20;not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
