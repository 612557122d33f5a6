package postgres

import (
	"context"
	"errors"
	"fmt"

	"eduintel/domain"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{
		DB: db,
	}
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id uint) (domain.Student, error) {
	if err := ctx.Err(); err != nil {
		return domain.Student{}, fmt.Errorf("context error: %w", err)
	}

	var student domain.Student
	err := r.DB.WithContext(ctx).First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Student{}, domain.ErrStudentNotFound
		}
		return domain.Student{}, fmt.Errorf("failed to find student: %w", err)
	}

	return student, nil
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]domain.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var students []domain.Student
	if err := r.DB.WithContext(ctx).Order("id").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to find students: %w", err)
	}

	return students, nil
}
