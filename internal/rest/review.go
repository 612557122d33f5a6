package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"eduintel/domain"
	"eduintel/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, review *domain.CounselorReview) error
}

type ReviewHandler struct {
	service   ReviewService
	validator *validator.Validate
	timeout   time.Duration
}

func NewReviewHandler(service ReviewService, timeout time.Duration) *ReviewHandler {
	return &ReviewHandler{
		service:   service,
		validator: validator.New(),
		timeout:   timeout,
	}
}

type ReviewRequest struct {
	StudentID uint   `json:"studentId" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	counselorID, _ := c.Get("counselor_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	review := &domain.CounselorReview{
		StudentID:   req.StudentID,
		Status:      domain.ReviewStatus(req.Status),
		Comment:     req.Comment,
		CounselorID: counselorID,
	}

	if err := h.service.SubmitReview(ctx, review); err != nil {
		switch {
		case errors.Is(err, domain.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Student not found"})
		case errors.Is(err, domain.ErrInvalidReviewStatus):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to submit review", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(
		fmt.Sprintf("Review submitted successfully for student %d", req.StudentID),
	))
}
