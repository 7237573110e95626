package service

import (
	"errors"
	"strings"

	"github.com/Taian-an/gym-management/models"
	"github.com/Taian-an/gym-management/repository"
	"gorm.io/gorm"
)

const unknownName = "Unknown"

type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	members     repository.MemberRepository
	courses     repository.CourseRepository
	coaches     repository.CoachRepository
}

func NewEnrollmentService(
	enrollments repository.EnrollmentRepository,
	members repository.MemberRepository,
	courses repository.CourseRepository,
	coaches repository.CoachRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		members:     members,
		courses:     courses,
		coaches:     coaches,
	}
}

// Enroll สมัครคอร์สตามลำดับ: ตรวจ input → คอร์สต้องมีอยู่ → ที่นั่งยังไม่เต็ม →
// ยังไม่เคยสมัคร → insert แบบจองที่นั่ง (transaction ใน repo เป็นตัวตัดสินจริง
// pre-check ตรงนี้มีไว้ให้ error message สะอาดเท่านั้น)
func (s *EnrollmentService) Enroll(dto EnrollDTO) (*EnrollmentView, error) {
	verr := newValidationError()
	if strings.TrimSpace(dto.MemberID) == "" {
		verr.Fields["member_id"] = "Missing memberId"
	}
	if strings.TrimSpace(dto.CourseID) == "" {
		verr.Fields["course_id"] = "Missing courseId"
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	course, err := s.courses.FindByID(dto.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	enrolled, err := s.enrollments.CountByCourse(course.ID)
	if err != nil {
		return nil, err
	}
	if enrolled >= int64(course.Capacity) {
		return nil, ErrCourseFull
	}

	exists, err := s.enrollments.ExistsByMemberAndCourse(dto.MemberID, dto.CourseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEnrollment
	}

	enrollment := &models.Enrollment{
		MemberID: dto.MemberID,
		CourseID: dto.CourseID,
	}
	if err := s.enrollments.CreateReserving(enrollment); err != nil {
		switch {
		case errors.Is(err, repository.ErrCourseFull):
			return nil, ErrCourseFull
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrDuplicateEnrollment
		case errors.Is(err, gorm.ErrRecordNotFound):
			// คอร์สโดนลบระหว่างทาง
			return nil, ErrNotFound
		}
		return nil, err
	}

	view := s.viewOf(*enrollment)
	return &view, nil
}

// ListEnrollments ทำ join สองชั้น: enrollment → member และ enrollment → course → coach
// record ปลายทางหายไป (โดนลบ) ใส่ placeholder แทน ไม่ fail ทั้ง list
func (s *EnrollmentService) ListEnrollments() ([]EnrollmentView, error) {
	enrollments, err := s.enrollments.FindAll()
	if err != nil {
		return nil, err
	}

	memberByID, err := s.memberIndex()
	if err != nil {
		return nil, err
	}
	courseByID, coachByID, err := s.courseCoachIndex()
	if err != nil {
		return nil, err
	}

	views := make([]EnrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		view := EnrollmentView{
			ID:         e.ID,
			Member:     RefView{ID: e.MemberID, Name: unknownName},
			Course:     CourseRefView{ID: e.CourseID, Title: unknownName},
			EnrolledAt: e.EnrolledAt,
		}
		if m, ok := memberByID[e.MemberID]; ok {
			view.Member.Name = m.Name
		}
		if course, ok := courseByID[e.CourseID]; ok {
			view.Course.Title = course.Title
			view.Course.Time = course.Time
			if course.CoachID != nil {
				if coach, ok := coachByID[*course.CoachID]; ok {
					view.Coach = &RefView{ID: coach.ID, Name: coach.Name}
				}
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Cancel ยกเลิกการสมัคร — ที่นั่งว่างคืนเองเพราะเรานับสดทุกครั้ง ไม่มี counter ให้แก้
func (s *EnrollmentService) Cancel(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Fields: map[string]string{"id": "Missing ID"}}
	}
	if err := s.enrollments.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// viewOf join รายตัวหลัง insert — ยอมให้ lookup พลาดแล้วใส่ placeholder เหมือนฝั่ง list
func (s *EnrollmentService) viewOf(e models.Enrollment) EnrollmentView {
	view := EnrollmentView{
		ID:         e.ID,
		Member:     RefView{ID: e.MemberID, Name: unknownName},
		Course:     CourseRefView{ID: e.CourseID, Title: unknownName},
		EnrolledAt: e.EnrolledAt,
	}
	if m, err := s.members.FindByID(e.MemberID); err == nil {
		view.Member.Name = m.Name
	}
	course, err := s.courses.FindByID(e.CourseID)
	if err != nil {
		return view
	}
	view.Course.Title = course.Title
	view.Course.Time = course.Time
	if course.CoachID != nil {
		if coach, err := s.coaches.FindByID(*course.CoachID); err == nil {
			view.Coach = &RefView{ID: coach.ID, Name: coach.Name}
		}
	}
	return view
}

func (s *EnrollmentService) memberIndex() (map[string]models.Member, error) {
	members, err := s.members.FindAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return byID, nil
}

func (s *EnrollmentService) courseCoachIndex() (map[string]models.Course, map[string]models.Coach, error) {
	courses, err := s.courses.FindAll()
	if err != nil {
		return nil, nil, err
	}
	courseByID := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		courseByID[c.ID] = c
	}

	coaches, err := s.coaches.FindAll()
	if err != nil {
		return nil, nil, err
	}
	coachByID := make(map[string]models.Coach, len(coaches))
	for _, c := range coaches {
		coachByID[c.ID] = c
	}
	return courseByID, coachByID, nil
}
