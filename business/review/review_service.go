package review

import (
	"context"
	"fmt"

	"eduintel/domain"
	"eduintel/pkg/logger"
)

type StudentRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Student, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.CounselorReview) error
}

type Service struct {
	students StudentRepository
	reviews  ReviewRepository
}

func NewService(students StudentRepository, reviews ReviewRepository) *Service {
	return &Service{
		students: students,
		reviews:  reviews,
	}
}

// SubmitReview records a counselor decision on a student's recommendations.
func (s *Service) SubmitReview(ctx context.Context, review *domain.CounselorReview) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if !review.Status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidReviewStatus, review.Status)
	}

	if _, err := s.students.FindByID(ctx, review.StudentID); err != nil {
		return err
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		logger.Error("failed to store counselor review", "student_id", review.StudentID, "error", err)
		return err
	}

	logger.Info("counselor review submitted",
		"student_id", review.StudentID,
		"status", review.Status,
		"counselor_id", review.CounselorID,
	)
	return nil
}
