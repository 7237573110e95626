package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Taian-an/gym-management/handlers"
	"github.com/Taian-an/gym-management/repository"
	"github.com/Taian-an/gym-management/service"
)

// Register wires all HTTP routes.
// รับ db handle ตรง ๆ แล้วประกอบ repository → service → handler ที่นี่ที่เดียว
func Register(e *echo.Echo, db *gorm.DB) {
	// ===== Repositories =====
	coachRepo := repository.NewCoachRepo(db)
	memberRepo := repository.NewMemberRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	enrollmentRepo := repository.NewEnrollmentRepo(db)

	// ===== Services =====
	coachSvc := service.NewCoachService(coachRepo)
	memberSvc := service.NewMemberService(memberRepo)
	courseSvc := service.NewCourseService(courseRepo, coachRepo, enrollmentRepo)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, memberRepo, courseRepo, coachRepo)
	statsSvc := service.NewStatsService(coachRepo, memberRepo, courseRepo, enrollmentRepo)

	// ===== Handlers =====
	coach := handlers.NewCoachHandler(coachSvc)
	member := handlers.NewMemberHandler(memberSvc)
	course := handlers.NewCourseHandler(courseSvc)
	enrollment := handlers.NewEnrollmentHandler(enrollmentSvc)
	stats := handlers.NewStatsHandler(statsSvc)
	health := handlers.NewHealthHandler(db)

	e.GET("/health", health.Check)

	e.GET("/coaches", coach.List)
	e.POST("/coaches", coach.Create)
	e.DELETE("/coaches/:id", coach.Delete)

	e.GET("/members", member.List)
	e.POST("/members", member.Create)
	e.PUT("/members/:id", member.Update)
	e.DELETE("/members/:id", member.Delete)

	// คอร์สคืน enrolled_count + coach_name ให้ FE ใช้ตัดสินใจปิดรับ
	e.GET("/courses", course.List)
	e.POST("/courses", course.Create)
	e.PUT("/courses/:id", course.Update)
	e.DELETE("/courses/:id", course.Delete)

	e.GET("/enrollments", enrollment.List)
	e.POST("/enrollments", enrollment.Create)
	e.DELETE("/enrollments/:id", enrollment.Delete)

	e.GET("/stats", stats.Get)
}
