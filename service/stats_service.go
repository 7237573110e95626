package service

import "github.com/Taian-an/gym-management/repository"

const recentCourseLimit = 10

type StatsService struct {
	coaches     repository.CoachRepository
	members     repository.MemberRepository
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
}

func NewStatsService(
	coaches repository.CoachRepository,
	members repository.MemberRepository,
	courses repository.CourseRepository,
	enrollments repository.EnrollmentRepository,
) *StatsService {
	return &StatsService{
		coaches:     coaches,
		members:     members,
		courses:     courses,
		enrollments: enrollments,
	}
}

// GetStats สรุปตัวเลขหน้าแดชบอร์ด + คอร์สล่าสุด (join โค้ชและยอดสมัครให้ด้วย)
func (s *StatsService) GetStats() (*StatsView, error) {
	coachCount, err := s.coaches.Count()
	if err != nil {
		return nil, err
	}
	memberCount, err := s.members.Count()
	if err != nil {
		return nil, err
	}
	courseCount, err := s.courses.Count()
	if err != nil {
		return nil, err
	}

	recent, err := s.courses.FindRecent(recentCourseLimit)
	if err != nil {
		return nil, err
	}

	courseSvc := CourseService{courses: s.courses, coaches: s.coaches, enrollments: s.enrollments}
	recentViews := make([]CourseWithOccupancy, 0, len(recent))
	for _, course := range recent {
		count, err := s.enrollments.CountByCourse(course.ID)
		if err != nil {
			return nil, err
		}
		recentViews = append(recentViews, courseSvc.withOccupancy(course, count))
	}

	return &StatsView{
		CoachCount:    coachCount,
		MemberCount:   memberCount,
		CourseCount:   courseCount,
		RecentCourses: recentViews,
	}, nil
}
