package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCourseCapacity = 10

type Course struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string `gorm:"size:100;not null" json:"title"`
	Capacity int    `gorm:"not null;default:10" json:"capacity"`
	Time     string `gorm:"size:60;not null" json:"time"` // เช่น "จันทร์ 18:00-19:30"

	// weak reference — ลบโค้ชแล้วคอร์สยังอยู่ (แสดงเป็น "Unassigned")
	CoachID *string `gorm:"type:uuid" json:"coach_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Course) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Capacity == 0 {
		m.Capacity = DefaultCourseCapacity
	}
	return nil
}
