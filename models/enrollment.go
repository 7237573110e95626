package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment เป็น join entity ระหว่าง Member กับ Course
// กันสมัครซ้ำด้วย unique index ที่คู่ (member_id, course_id) — ชั้น storage คือ source of truth
type Enrollment struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_member_course" json:"member_id"`
	CourseID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_member_course" json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (m *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.EnrolledAt.IsZero() {
		m.EnrolledAt = time.Now()
	}
	return nil
}
