package rest

import (
	"context"
	"net/http"
	"time"

	"eduintel/domain"
	"eduintel/pkg/logger"

	"github.com/labstack/echo/v4"
)

type UniversityService interface {
	ListUniversities(ctx context.Context, country, field string) ([]domain.University, error)
}

type UniversityHandler struct {
	service UniversityService
	timeout time.Duration
}

func NewUniversityHandler(service UniversityService, timeout time.Duration) *UniversityHandler {
	return &UniversityHandler{
		service: service,
		timeout: timeout,
	}
}

type universityResponse struct {
	ID                   uint    `json:"id"`
	Name                 string  `json:"name"`
	Country              string  `json:"country"`
	Program              string  `json:"program"`
	Tuition              float64 `json:"tuition"`
	Ranking              int     `json:"ranking"`
	ScholarshipAvailable bool    `json:"scholarship_available"`
}

type UniversityQuery struct {
	Country string `query:"country"`
	Field   string `query:"field"`
}

func (h *UniversityHandler) GetUniversities(c echo.Context) error {
	var q UniversityQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	universities, err := h.service.ListUniversities(ctx, q.Country, q.Field)
	if err != nil {
		logger.Error("Failed to list universities", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	out := make([]universityResponse, 0, len(universities))
	for _, u := range universities {
		out = append(out, universityResponse{
			ID:                   u.ID,
			Name:                 u.Name,
			Country:              u.Country,
			Program:              u.Program,
			Tuition:              u.Tuition,
			Ranking:              u.Ranking,
			ScholarshipAvailable: u.ScholarshipAvailable,
		})
	}

	return c.JSON(http.StatusOK, out)
}
