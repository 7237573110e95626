package service

import (
	"time"

	"github.com/Taian-an/gym-management/models"
)

// Coach DTOs
type CreateCoachDTO struct {
	Name      string
	Expertise []string
	Phone     string
	Email     string
}

// Member DTOs
type CreateMemberDTO struct {
	Name  string
	Phone string
	Email string
}

type UpdateMemberDTO struct {
	Name  string
	Phone string
	Email string
}

// Course DTOs
type CreateCourseDTO struct {
	Title    string
	Capacity int
	Time     string
	CoachID  string // ว่าง = ยังไม่มอบหมายโค้ช
}

type UpdateCourseDTO struct {
	Title    string
	Capacity int
	Time     string
	CoachID  string
}

// Enrollment DTOs
type EnrollDTO struct {
	MemberID string
	CourseID string
}

// RefView คือ reference แบบย่อ (id + ชื่อ) ใช้ใน view ที่ join แล้ว
type RefView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CourseRefView คือคอร์สแบบย่อใน EnrollmentView
type CourseRefView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"`
}

// EnrollmentView คือ enrollment ที่ join ครบแล้ว (member + course + coach ของคอร์ส)
// ถ้า record ปลายทางถูกลบไปแล้ว จะใส่ placeholder แทน ไม่ถือเป็น error
type EnrollmentView struct {
	ID         string        `json:"id"`
	Member     RefView       `json:"member"`
	Course     CourseRefView `json:"course"`
	Coach      *RefView      `json:"coach,omitempty"`
	EnrolledAt time.Time     `json:"enrolled_at"`
}

// CourseWithOccupancy คือคอร์สพร้อมยอดสมัครปัจจุบัน — นับสดทุกครั้ง ไม่เก็บบน record
type CourseWithOccupancy struct {
	models.Course
	EnrolledCount int64   `json:"enrolled_count"`
	CoachName     *string `json:"coach_name"`
}

// StatsView สำหรับหน้าแดชบอร์ด
type StatsView struct {
	CoachCount    int64                 `json:"coach_count"`
	MemberCount   int64                 `json:"member_count"`
	CourseCount   int64                 `json:"course_count"`
	RecentCourses []CourseWithOccupancy `json:"recent_courses"`
}
