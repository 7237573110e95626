package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Coach struct {
	ID        string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string                      `gorm:"size:100;not null" json:"name"`
	Expertise datatypes.JSONSlice[string] `json:"expertise"` // ความเชี่ยวชาญ เช่น เวทเทรนนิ่ง, โยคะ
	Phone     string                      `gorm:"size:15" json:"phone,omitempty"`
	Email     *string                     `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func (m *Coach) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
