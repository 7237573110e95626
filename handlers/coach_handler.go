package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Taian-an/gym-management/models"
	"github.com/Taian-an/gym-management/service"
)

type CoachService interface {
	CreateCoach(dto service.CreateCoachDTO) (*models.Coach, error)
	ListCoaches() ([]models.Coach, error)
	DeleteCoach(id string) error
}

type CoachHandler struct {
	svc CoachService
}

func NewCoachHandler(svc CoachService) *CoachHandler { return &CoachHandler{svc: svc} }

type coachPayload struct {
	Name      string   `json:"name"`
	Expertise []string `json:"expertise"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
}

func (h *CoachHandler) List(c echo.Context) error {
	coaches, err := h.svc.ListCoaches()
	if err != nil {
		return rejectError(c, err)
	}
	return respondData(c, http.StatusOK, coaches)
}

func (h *CoachHandler) Create(c echo.Context) error {
	var p coachPayload
	if err := c.Bind(&p); err != nil {
		return rejectMessage(c, http.StatusBadRequest, "Invalid payload")
	}

	coach, err := h.svc.CreateCoach(service.CreateCoachDTO{
		Name:      p.Name,
		Expertise: p.Expertise,
		Phone:     p.Phone,
		Email:     p.Email,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return rejectValidation(c, verr)
		}
		return rejectError(c, err)
	}
	return respondData(c, http.StatusCreated, coach)
}

func (h *CoachHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteCoach(c.Param("id")); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return rejectMessage(c, http.StatusBadRequest, "Missing ID")
		}
		return rejectError(c, err)
	}
	return respondMessage(c, "Coach deleted")
}
