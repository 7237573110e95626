package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Taian-an/gym-management/service"
)

type StatsService interface {
	GetStats() (*service.StatsView, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Get(c echo.Context) error {
	stats, err := h.svc.GetStats()
	if err != nil {
		return rejectError(c, err)
	}
	return respondData(c, http.StatusOK, stats)
}
