package repository

import (
	"github.com/Taian-an/gym-management/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository interface {
	// CreateReserving insert แบบจองที่นั่ง: นับ + insert ใน transaction เดียว
	CreateReserving(enrollment *models.Enrollment) error
	FindByID(id string) (*models.Enrollment, error)
	FindAll() ([]models.Enrollment, error)
	Delete(id string) error
	CountByCourse(courseID string) (int64, error)
	ExistsByMemberAndCourse(memberID, courseID string) (bool, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

// CreateReserving ล็อกแถวคอร์ส (SELECT ... FOR UPDATE) ก่อนนับและ insert
// เพื่อปิด race แบบ check-then-act ตอนแย่งที่นั่งสุดท้าย — สอง request พร้อมกัน
// จะได้ที่นั่งแค่คนเดียว ส่วนคนสมัครซ้ำโดน unique index ที่คู่ (member, course) ดักอยู่แล้ว
func (r *enrollmentRepo) CreateReserving(enrollment *models.Enrollment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&course, "id = ?", enrollment.CourseID).Error; err != nil {
			return err
		}

		var enrolled int64
		if err := tx.Model(&models.Enrollment{}).
			Where("course_id = ?", enrollment.CourseID).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled >= int64(course.Capacity) {
			return ErrCourseFull
		}

		return tx.Create(enrollment).Error
	})
}

func (r *enrollmentRepo) FindByID(id string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.First(&enrollment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) FindAll() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Order("created_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) Delete(id string) error {
	res := r.db.Delete(&models.Enrollment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *enrollmentRepo) CountByCourse(courseID string) (int64, error) {
	var n int64
	err := r.db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&n).Error
	return n, err
}

func (r *enrollmentRepo) ExistsByMemberAndCourse(memberID, courseID string) (bool, error) {
	var n int64
	err := r.db.Model(&models.Enrollment{}).
		Where("member_id = ? AND course_id = ?", memberID, courseID).
		Count(&n).Error
	return n > 0, err
}
