package service

import (
	"errors"
	"strings"

	"github.com/Taian-an/gym-management/models"
	"github.com/Taian-an/gym-management/repository"
	"gorm.io/gorm"
)

const coachUnassigned = "Unassigned"

type CourseService struct {
	courses     repository.CourseRepository
	coaches     repository.CoachRepository
	enrollments repository.EnrollmentRepository
}

func NewCourseService(
	courses repository.CourseRepository,
	coaches repository.CoachRepository,
	enrollments repository.EnrollmentRepository,
) *CourseService {
	return &CourseService{courses: courses, coaches: coaches, enrollments: enrollments}
}

func validateCourseFields(title, courseTime string, capacity int) *ValidationError {
	verr := newValidationError()
	if strings.TrimSpace(title) == "" {
		verr.Fields["title"] = "กรุณากรอกชื่อคอร์ส"
	}
	if strings.TrimSpace(courseTime) == "" {
		verr.Fields["time"] = "กรุณาระบุเวลาเรียน"
	}
	if capacity < 0 {
		verr.Fields["capacity"] = "จำนวนรับต้องเป็นบวก"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func (s *CourseService) CreateCourse(dto CreateCourseDTO) (*CourseWithOccupancy, error) {
	if verr := validateCourseFields(dto.Title, dto.Time, dto.Capacity); verr != nil {
		return nil, verr
	}

	capacity := dto.Capacity
	if capacity == 0 {
		capacity = models.DefaultCourseCapacity
	}
	course := &models.Course{
		Title:    strings.TrimSpace(dto.Title),
		Capacity: capacity,
		Time:     strings.TrimSpace(dto.Time),
		CoachID:  optionalString(dto.CoachID),
	}
	if err := s.courses.Create(course); err != nil {
		return nil, err
	}
	view := s.withOccupancy(*course, 0)
	return &view, nil
}

// ListCoursesWithOccupancy คืนทุกคอร์สพร้อม enrolled_count ที่นับสด และชื่อโค้ชที่ join แล้ว
func (s *CourseService) ListCoursesWithOccupancy() ([]CourseWithOccupancy, error) {
	courses, err := s.courses.FindAll()
	if err != nil {
		return nil, err
	}

	views := make([]CourseWithOccupancy, 0, len(courses))
	for _, course := range courses {
		count, err := s.enrollments.CountByCourse(course.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, s.withOccupancy(course, count))
	}
	return views, nil
}

// UpdateCourse แก้คอร์สแล้ว join ชื่อโค้ชกลับไปด้วย (FE ใช้ render ต่อทันที)
// ลด capacity ต่ำกว่ายอดสมัครปัจจุบันได้ — ไม่ไปไล่ยกเลิกใคร มีผลแค่การสมัครใหม่
func (s *CourseService) UpdateCourse(id string, dto UpdateCourseDTO) (*CourseWithOccupancy, error) {
	course, err := s.courses.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if verr := validateCourseFields(dto.Title, dto.Time, dto.Capacity); verr != nil {
		return nil, verr
	}

	course.Title = strings.TrimSpace(dto.Title)
	course.Time = strings.TrimSpace(dto.Time)
	if dto.Capacity > 0 {
		course.Capacity = dto.Capacity
	}
	course.CoachID = optionalString(dto.CoachID)

	if err := s.courses.Update(course); err != nil {
		return nil, err
	}

	count, err := s.enrollments.CountByCourse(course.ID)
	if err != nil {
		return nil, err
	}
	view := s.withOccupancy(*course, count)
	return &view, nil
}

func (s *CourseService) DeleteCourse(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Fields: map[string]string{"id": "Missing ID"}}
	}
	return s.courses.Delete(id)
}

// withOccupancy เติมชื่อโค้ช: ไม่มีโค้ช → nil, โค้ชโดนลบไปแล้ว → "Unassigned"
func (s *CourseService) withOccupancy(course models.Course, count int64) CourseWithOccupancy {
	view := CourseWithOccupancy{Course: course, EnrolledCount: count}
	if course.CoachID == nil {
		return view
	}
	coach, err := s.coaches.FindByID(*course.CoachID)
	if err != nil {
		name := coachUnassigned
		view.CoachName = &name
		return view
	}
	view.CoachName = &coach.Name
	return view
}
