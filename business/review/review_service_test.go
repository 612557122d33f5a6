package review

import (
	"context"
	"errors"
	"testing"

	"eduintel/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStudents map[uint]domain.Student

func (f fakeStudents) FindByID(ctx context.Context, id uint) (domain.Student, error) {
	s, ok := f[id]
	if !ok {
		return domain.Student{}, domain.ErrStudentNotFound
	}
	return s, nil
}

type fakeReviews struct {
	saved []domain.CounselorReview
	err   error
}

func (f *fakeReviews) Create(ctx context.Context, r *domain.CounselorReview) error {
	if f.err != nil {
		return f.err
	}
	r.ID = uint(len(f.saved) + 1)
	f.saved = append(f.saved, *r)
	return nil
}

func TestSubmitReview(t *testing.T) {
	students := fakeStudents{3: {ID: 3, Name: "Ravi"}}

	tests := []struct {
		name    string
		review  domain.CounselorReview
		repoErr error
		wantErr error
		saved   int
	}{
		{
			name:   "approved",
			review: domain.CounselorReview{StudentID: 3, Status: domain.ReviewApproved, Comment: "solid"},
			saved:  1,
		},
		{
			name:   "every status is accepted",
			review: domain.CounselorReview{StudentID: 3, Status: domain.ReviewAIGenerated},
			saved:  1,
		},
		{
			name:    "unknown status",
			review:  domain.CounselorReview{StudentID: 3, Status: "Maybe"},
			wantErr: domain.ErrInvalidReviewStatus,
		},
		{
			name:    "unknown student",
			review:  domain.CounselorReview{StudentID: 404, Status: domain.ReviewRejected},
			wantErr: domain.ErrStudentNotFound,
		},
		{
			name:    "store fails",
			review:  domain.CounselorReview{StudentID: 3, Status: domain.ReviewModified},
			repoErr: errors.New("insert failed"),
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := &fakeReviews{err: tt.repoErr}
			svc := NewService(students, reviews)

			review := tt.review
			err := svc.SubmitReview(context.Background(), &review)

			if tt.wantErr != nil {
				require.Error(t, err)
				if tt.repoErr == nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Empty(t, reviews.saved)
				return
			}

			require.NoError(t, err)
			assert.Len(t, reviews.saved, tt.saved)
			assert.NotZero(t, review.ID)
		})
	}
}
