package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError はusecaseの失敗種別をHTTPステータスに写す。
// 内部起因（整合性・一時障害）は詳細をログに残し、応答は一般化する。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message})
	}
	if ce, ok := usecase.AsConflictError(err); ok {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: ce.Message})
	}
	if _, ok := usecase.AsIntegrityError(err); ok {
		log.WithError(err).Error("data integrity failure")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	if _, ok := usecase.AsTransientError(err); ok {
		log.WithError(err).Error("store unavailable")
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service unavailable"})
	}

	//500
	log.WithError(err).Error("unhandled error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /menu の公開API
type MenuHandler struct {
	uc *usecase.MenuUsecase
}

// DI
func NewMenuHandler(uc *usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", h.list)
}

func (h *MenuHandler) list(c echo.Context) error {
	out, err := h.uc.ListActiveMenuItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
