package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Taian-an/gym-management/models"
	"github.com/Taian-an/gym-management/service"
)

type MemberService interface {
	CreateMember(dto service.CreateMemberDTO) (*models.Member, error)
	ListMembers() ([]models.Member, error)
	UpdateMember(id string, dto service.UpdateMemberDTO) (*models.Member, error)
	DeleteMember(id string) error
}

type MemberHandler struct {
	svc MemberService
}

func NewMemberHandler(svc MemberService) *MemberHandler { return &MemberHandler{svc: svc} }

type memberPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.svc.ListMembers()
	if err != nil {
		return rejectError(c, err)
	}
	return respondData(c, http.StatusOK, members)
}

func (h *MemberHandler) Create(c echo.Context) error {
	var p memberPayload
	if err := c.Bind(&p); err != nil {
		return rejectMessage(c, http.StatusBadRequest, "Invalid payload")
	}

	member, err := h.svc.CreateMember(service.CreateMemberDTO{
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return rejectValidation(c, verr)
		}
		return rejectError(c, err)
	}
	return respondData(c, http.StatusCreated, member)
}

func (h *MemberHandler) Update(c echo.Context) error {
	var p memberPayload
	if err := c.Bind(&p); err != nil {
		return rejectMessage(c, http.StatusBadRequest, "Invalid payload")
	}

	member, err := h.svc.UpdateMember(c.Param("id"), service.UpdateMemberDTO{
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return rejectValidation(c, verr)
		case errors.Is(err, service.ErrNotFound):
			return rejectMessage(c, http.StatusNotFound, "Member not found")
		}
		return rejectError(c, err)
	}
	return respondData(c, http.StatusOK, member)
}

func (h *MemberHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteMember(c.Param("id")); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return rejectMessage(c, http.StatusBadRequest, "Missing ID")
		}
		return rejectError(c, err)
	}
	return respondMessage(c, "Member deleted")
}
