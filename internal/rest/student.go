package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"eduintel/domain"
	"eduintel/pkg/logger"

	"github.com/labstack/echo/v4"
)

type StudentService interface {
	ListStudents(ctx context.Context) ([]domain.Student, error)
	StudentRecommendations(ctx context.Context, studentID uint) ([]domain.Recommendation, error)
}

type StudentHandler struct {
	service StudentService
	timeout time.Duration
}

func NewStudentHandler(service StudentService, timeout time.Duration) *StudentHandler {
	return &StudentHandler{
		service: service,
		timeout: timeout,
	}
}

type studentResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	CGPA       float64 `json:"cgpa"`
	IELTS      float64 `json:"ielts"`
	Country    string  `json:"country"`
	Field      string  `json:"field"`
	CareerGoal string  `json:"career_goal"`
	Budget     int64   `json:"budget"`
}

func (h *StudentHandler) GetAllStudents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	students, err := h.service.ListStudents(ctx)
	if err != nil {
		logger.Error("Failed to find all students", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	out := make([]studentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, studentResponse{
			ID:         s.ID,
			Name:       s.Name,
			CGPA:       s.CGPA,
			IELTS:      s.IELTS,
			Country:    s.Country,
			Field:      s.Field,
			CareerGoal: s.CareerGoal,
			Budget:     s.Budget,
		})
	}

	return c.JSON(http.StatusOK, out)
}

func (h *StudentHandler) GetStudentRecommendations(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid student id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	records, err := h.service.StudentRecommendations(ctx, uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to find student recommendations", "student_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, records)
}
