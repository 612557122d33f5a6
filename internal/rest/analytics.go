package rest

import (
	"context"
	"net/http"
	"time"

	"eduintel/domain"

	"github.com/labstack/echo/v4"
)

type AnalyticsService interface {
	Summary(ctx context.Context) domain.Analytics
}

type AnalyticsHandler struct {
	service AnalyticsService
	timeout time.Duration
}

func NewAnalyticsHandler(service AnalyticsService, timeout time.Duration) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		timeout: timeout,
	}
}

func (h *AnalyticsHandler) GetAnalytics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	return c.JSON(http.StatusOK, h.service.Summary(ctx))
}
