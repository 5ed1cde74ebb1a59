package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /stats 配下の読み取り専用API
type StatsHandler struct {
	uc *usecase.StatsUsecase
}

func NewStatsHandler(uc *usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/stats")
	g.GET("/summary", h.summary)
	g.GET("/most-ordered-items", h.mostOrdered)
	g.GET("/peak-hours", h.peakHours)
	g.GET("/low-stock-alert", h.lowStock)
}

func (h *StatsHandler) summary(c echo.Context) error {
	out, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) mostOrdered(c echo.Context) error {
	out, err := h.uc.MostOrdered(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) peakHours(c echo.Context) error {
	out, err := h.uc.PeakHours(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) lowStock(c echo.Context) error {
	out, err := h.uc.LowStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
