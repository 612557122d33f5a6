package student

import (
	"context"
	"fmt"

	"eduintel/domain"
)

type StudentRepository interface {
	FindAll(ctx context.Context) ([]domain.Student, error)
	FindByID(ctx context.Context, id uint) (domain.Student, error)
}

type RecommendationRepository interface {
	FindByStudent(ctx context.Context, studentID uint) ([]domain.Recommendation, error)
}

type Service struct {
	repo            StudentRepository
	recommendations RecommendationRepository
}

func NewService(repo StudentRepository, recommendations RecommendationRepository) *Service {
	return &Service{
		repo:            repo,
		recommendations: recommendations,
	}
}

func (s *Service) ListStudents(ctx context.Context) ([]domain.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	students, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []domain.Student{}
	}
	return students, nil
}

// StudentRecommendations returns the stored shortlist rows of one student,
// oldest first. An unknown student yields domain.ErrStudentNotFound.
func (s *Service) StudentRecommendations(ctx context.Context, studentID uint) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if _, err := s.repo.FindByID(ctx, studentID); err != nil {
		return nil, err
	}

	records, err := s.recommendations.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Recommendation{}
	}
	return records, nil
}
