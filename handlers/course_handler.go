package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Taian-an/gym-management/service"
)

type CourseService interface {
	CreateCourse(dto service.CreateCourseDTO) (*service.CourseWithOccupancy, error)
	ListCoursesWithOccupancy() ([]service.CourseWithOccupancy, error)
	UpdateCourse(id string, dto service.UpdateCourseDTO) (*service.CourseWithOccupancy, error)
	DeleteCourse(id string) error
}

type CourseHandler struct {
	svc CourseService
}

func NewCourseHandler(svc CourseService) *CourseHandler { return &CourseHandler{svc: svc} }

type coursePayload struct {
	Title    string `json:"title"`
	Capacity int    `json:"capacity"`
	Time     string `json:"time"`
	CoachID  string `json:"coachId"`
}

// List คืนทุกคอร์สพร้อม enrolled_count (นับสด) และ coach_name
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.svc.ListCoursesWithOccupancy()
	if err != nil {
		return rejectError(c, err)
	}
	return respondData(c, http.StatusOK, courses)
}

func (h *CourseHandler) Create(c echo.Context) error {
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return rejectMessage(c, http.StatusBadRequest, "Invalid payload")
	}

	course, err := h.svc.CreateCourse(service.CreateCourseDTO{
		Title:    p.Title,
		Capacity: p.Capacity,
		Time:     p.Time,
		CoachID:  p.CoachID,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return rejectValidation(c, verr)
		}
		return rejectError(c, err)
	}
	return respondData(c, http.StatusCreated, course)
}

func (h *CourseHandler) Update(c echo.Context) error {
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return rejectMessage(c, http.StatusBadRequest, "Invalid payload")
	}

	course, err := h.svc.UpdateCourse(c.Param("id"), service.UpdateCourseDTO{
		Title:    p.Title,
		Capacity: p.Capacity,
		Time:     p.Time,
		CoachID:  p.CoachID,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return rejectValidation(c, verr)
		case errors.Is(err, service.ErrNotFound):
			return rejectMessage(c, http.StatusNotFound, "Course not found")
		}
		return rejectError(c, err)
	}
	return respondData(c, http.StatusOK, course)
}

func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteCourse(c.Param("id")); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return rejectMessage(c, http.StatusBadRequest, "Missing ID")
		}
		return rejectError(c, err)
	}
	return respondMessage(c, "Course deleted")
}
