package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Taian-an/gym-management/models"
	"github.com/Taian-an/gym-management/repository"
)

// in-memory fakes ของ repository — ใช้เทสต์ business rule โดยไม่ต้องมี DB

type fakeCoachRepo struct {
	items []models.Coach
}

func (f *fakeCoachRepo) Create(c *models.Coach) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCoachRepo) FindByID(id string) (*models.Coach, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCoachRepo) FindAll() ([]models.Coach, error) {
	return append([]models.Coach(nil), f.items...), nil
}

func (f *fakeCoachRepo) Update(c *models.Coach) error {
	for i := range f.items {
		if f.items[i].ID == c.ID {
			f.items[i] = *c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCoachRepo) Delete(id string) error {
	kept := f.items[:0]
	for _, c := range f.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCoachRepo) Count() (int64, error) {
	return int64(len(f.items)), nil
}

type fakeMemberRepo struct {
	items []models.Member
}

func (f *fakeMemberRepo) Create(m *models.Member) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.JoinDate.IsZero() {
		m.JoinDate = time.Now()
	}
	f.items = append(f.items, *m)
	return nil
}

func (f *fakeMemberRepo) FindByID(id string) (*models.Member, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			m := f.items[i]
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMemberRepo) FindAll() ([]models.Member, error) {
	return append([]models.Member(nil), f.items...), nil
}

func (f *fakeMemberRepo) Update(m *models.Member) error {
	for i := range f.items {
		if f.items[i].ID == m.ID {
			f.items[i] = *m
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeMemberRepo) Delete(id string) error {
	kept := f.items[:0]
	for _, m := range f.items {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeMemberRepo) Count() (int64, error) {
	return int64(len(f.items)), nil
}

type fakeCourseRepo struct {
	items []models.Course
}

func (f *fakeCourseRepo) Create(c *models.Course) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Capacity == 0 {
		c.Capacity = models.DefaultCourseCapacity
	}
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCourseRepo) FindByID(id string) (*models.Course, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) FindAll() ([]models.Course, error) {
	return append([]models.Course(nil), f.items...), nil
}

// FindRecent เรียงใหม่สุดก่อนแบบเดียวกับ repo จริง (ของ fake คือท้าย slice)
func (f *fakeCourseRepo) FindRecent(limit int) ([]models.Course, error) {
	recent := make([]models.Course, 0, limit)
	for i := len(f.items) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, f.items[i])
	}
	return recent, nil
}

func (f *fakeCourseRepo) Update(c *models.Course) error {
	for i := range f.items {
		if f.items[i].ID == c.ID {
			f.items[i] = *c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) Delete(id string) error {
	kept := f.items[:0]
	for _, c := range f.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCourseRepo) Count() (int64, error) {
	return int64(len(f.items)), nil
}

type fakeEnrollmentRepo struct {
	items   []models.Enrollment
	courses *fakeCourseRepo
}

// CreateReserving เลียนแบบ transaction จริง: เช็คคอร์ส → นับ → unique pair → insert
func (f *fakeEnrollmentRepo) CreateReserving(e *models.Enrollment) error {
	course, err := f.courses.FindByID(e.CourseID)
	if err != nil {
		return err
	}
	var enrolled int64
	for _, it := range f.items {
		if it.CourseID == e.CourseID {
			enrolled++
		}
	}
	if enrolled >= int64(course.Capacity) {
		return repository.ErrCourseFull
	}
	for _, it := range f.items {
		if it.MemberID == e.MemberID && it.CourseID == e.CourseID {
			return gorm.ErrDuplicatedKey
		}
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = time.Now()
	}
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeEnrollmentRepo) FindByID(id string) (*models.Enrollment, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			e := f.items[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEnrollmentRepo) FindAll() ([]models.Enrollment, error) {
	return append([]models.Enrollment(nil), f.items...), nil
}

func (f *fakeEnrollmentRepo) Delete(id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeEnrollmentRepo) CountByCourse(courseID string) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEnrollmentRepo) ExistsByMemberAndCourse(memberID, courseID string) (bool, error) {
	for _, it := range f.items {
		if it.MemberID == memberID && it.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// fixture ประกอบ service ทุกตัวบน fakes ชุดเดียวกัน
type fixture struct {
	coaches     *fakeCoachRepo
	members     *fakeMemberRepo
	courses     *fakeCourseRepo
	enrollments *fakeEnrollmentRepo

	coachSvc      *CoachService
	memberSvc     *MemberService
	courseSvc     *CourseService
	enrollmentSvc *EnrollmentService
	statsSvc      *StatsService
}

func newFixture() *fixture {
	coaches := &fakeCoachRepo{}
	members := &fakeMemberRepo{}
	courses := &fakeCourseRepo{}
	enrollments := &fakeEnrollmentRepo{courses: courses}

	return &fixture{
		coaches:       coaches,
		members:       members,
		courses:       courses,
		enrollments:   enrollments,
		coachSvc:      NewCoachService(coaches),
		memberSvc:     NewMemberService(members),
		courseSvc:     NewCourseService(courses, coaches, enrollments),
		enrollmentSvc: NewEnrollmentService(enrollments, members, courses, coaches),
		statsSvc:      NewStatsService(coaches, members, courses, enrollments),
	}
}

func (f *fixture) mustMember(name string) *models.Member {
	m := &models.Member{Name: name, Phone: "0812345678"}
	_ = f.members.Create(m)
	return m
}

func (f *fixture) mustCourse(title string, capacity int, coachID *string) *models.Course {
	c := &models.Course{Title: title, Capacity: capacity, Time: "Mon 18:00-19:30", CoachID: coachID}
	_ = f.courses.Create(c)
	return c
}

func (f *fixture) mustCoach(name string) *models.Coach {
	c := &models.Coach{Name: name}
	_ = f.coaches.Create(c)
	return c
}
