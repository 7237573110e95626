package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Taian-an/gym-management/service"
)

type EnrollmentService interface {
	Enroll(dto service.EnrollDTO) (*service.EnrollmentView, error)
	ListEnrollments() ([]service.EnrollmentView, error)
	Cancel(id string) error
}

type EnrollmentHandler struct {
	svc EnrollmentService
}

func NewEnrollmentHandler(svc EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

type enrollmentPayload struct {
	MemberID string `json:"memberId"`
	CourseID string `json:"courseId"`
}

// List คืน enrollment ที่ join ครบ (ชื่อสมาชิก + ชื่อคอร์ส + โค้ชของคอร์ส)
func (h *EnrollmentHandler) List(c echo.Context) error {
	views, err := h.svc.ListEnrollments()
	if err != nil {
		return rejectError(c, err)
	}
	return respondData(c, http.StatusOK, views)
}

func (h *EnrollmentHandler) Create(c echo.Context) error {
	var p enrollmentPayload
	if err := c.Bind(&p); err != nil {
		return rejectMessage(c, http.StatusBadRequest, "Invalid payload")
	}

	view, err := h.svc.Enroll(service.EnrollDTO{MemberID: p.MemberID, CourseID: p.CourseID})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return rejectValidation(c, verr)
		case errors.Is(err, service.ErrNotFound):
			return rejectMessage(c, http.StatusNotFound, "Course not found")
		case errors.Is(err, service.ErrCourseFull):
			return rejectMessage(c, http.StatusBadRequest, "Course is full")
		case errors.Is(err, service.ErrDuplicateEnrollment):
			return rejectMessage(c, http.StatusBadRequest, "Already enrolled in this course")
		}
		return rejectError(c, err)
	}
	return respondData(c, http.StatusCreated, view)
}

func (h *EnrollmentHandler) Delete(c echo.Context) error {
	if err := h.svc.Cancel(c.Param("id")); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return rejectMessage(c, http.StatusBadRequest, "Missing ID")
		case errors.Is(err, service.ErrNotFound):
			return rejectMessage(c, http.StatusNotFound, "Enrollment not found")
		}
		return rejectError(c, err)
	}
	return respondMessage(c, "Enrollment cancelled")
}
