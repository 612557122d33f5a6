package rest

import (
	"context"
	"net/http"
	"time"

	"eduintel/domain"
	"eduintel/pkg/logger"
	"eduintel/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendationService interface {
	Recommend(ctx context.Context, student *domain.Student) ([]domain.RecommendationResult, error)
	Explain(ctx context.Context, student domain.Student) ([]domain.ExplainedCandidate, error)
}

type RecommendationHandler struct {
	service   RecommendationService
	validator *validator.Validate
	timeout   time.Duration
}

func NewRecommendationHandler(service RecommendationService, timeout time.Duration) *RecommendationHandler {
	return &RecommendationHandler{
		service:   service,
		validator: validator.New(),
		timeout:   timeout,
	}
}

// StudentProfile is the applicant profile posted by the frontend. CGPA and
// IELTS are pointers so an omitted score fails validation instead of
// reading as zero; on the query string they are bound by bindScores.
type StudentProfile struct {
	Name       string   `json:"name" query:"name" validate:"required"`
	CGPA       *float64 `json:"cgpa" validate:"required,gte=0,lte=10"`
	IELTS      *float64 `json:"ielts" validate:"required,gte=0,lte=9"`
	Budget     int64    `json:"budget" query:"budget" validate:"gt=0"`
	Country    string   `json:"country" query:"country" validate:"required"`
	Field      string   `json:"field" query:"field" validate:"required"`
	CareerGoal string   `json:"careerGoal" query:"careerGoal" validate:"required"`
}

// bindScores reads cgpa and ielts from the query string when present.
func (p *StudentProfile) bindScores(c echo.Context) error {
	params := c.QueryParams()
	binder := echo.QueryParamsBinder(c)
	if params.Has("cgpa") {
		p.CGPA = new(float64)
		binder.Float64("cgpa", p.CGPA)
	}
	if params.Has("ielts") {
		p.IELTS = new(float64)
		binder.Float64("ielts", p.IELTS)
	}
	return binder.BindError()
}

func (p StudentProfile) toStudent() domain.Student {
	return domain.Student{
		Name:       p.Name,
		CGPA:       *p.CGPA,
		IELTS:      *p.IELTS,
		Budget:     p.Budget,
		Country:    p.Country,
		Field:      p.Field,
		CareerGoal: p.CareerGoal,
	}
}

func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()
	metrics.RecommendRequests.Inc()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()

	var req StudentProfile
	if err := c.Bind(&req); err != nil {
		metrics.RecommendInvalidProfiles.Inc()
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		metrics.RecommendInvalidProfiles.Inc()
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	student := req.toStudent()
	results, err := h.service.Recommend(ctx, &student)
	if err != nil {
		logger.Error("Failed to generate recommendations", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, results)
}

// GET /api/v1/recommend/explain?name=..&cgpa=..&ielts=..&budget=..&country=..&field=..&careerGoal=..
func (h *RecommendationHandler) Explain(c echo.Context) error {
	var req StudentProfile
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := req.bindScores(c); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	explained, err := h.service.Explain(ctx, req.toStudent())
	if err != nil {
		logger.Error("Failed to explain ranking", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, explained)
}
