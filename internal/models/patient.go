package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient registered at the front desk. Email uniqueness is owned by the store.
type Patient struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string `gorm:"size:120;not null" json:"name"`
	Email string `gorm:"size:160;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:40;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Patient) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
