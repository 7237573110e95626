package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Taian-an/gym-management/service"
)

// envelope เดียวกันทุก endpoint: { success, data?, message?, error? }
// message = ปฏิเสธแบบตั้งใจ (validation/business rule), error = พังจริง (500)

func respondData(c echo.Context, code int, data any) error {
	return c.JSON(code, map[string]any{"success": true, "data": data})
}

func respondMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": msg})
}

func rejectMessage(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "message": msg})
}

func rejectValidation(c echo.Context, verr *service.ValidationError) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"success": false,
		"message": verr.Error(),
		"fields":  verr.Fields,
	})
}

func rejectError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}
