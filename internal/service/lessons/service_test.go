package lessons

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	lessonCreditRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/lessoncredit"
)

type fakeCreditRepo struct {
	credit *domain.LessonCredit
	err    error
}

func (f *fakeCreditRepo) GetByEmail(_ context.Context, _ string) (*domain.LessonCredit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.credit, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetAvailableLessonCount(t *testing.T) {
	svc := NewService(&fakeCreditRepo{
		credit: &domain.LessonCredit{Email: "student@example.com", AvailableLessons: 4},
	}, nopLogger{})

	count, err := svc.GetAvailableLessonCount(context.Background(), "student@example.com")

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestGetAvailableLessonCount_StudentNotFound(t *testing.T) {
	svc := NewService(&fakeCreditRepo{err: lessonCreditRepo.ErrCreditNotFound}, nopLogger{})

	_, err := svc.GetAvailableLessonCount(context.Background(), "unknown@example.com")

	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestGetAvailableLessonCount_RepositoryFailure(t *testing.T) {
	svc := NewService(&fakeCreditRepo{err: errors.New("db down")}, nopLogger{})

	_, err := svc.GetAvailableLessonCount(context.Background(), "student@example.com")

	require.ErrorIs(t, err, ErrInternal)
}

func TestIsTrialAvailable(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeCreditRepo
		want bool
	}{
		{
			name: "записи о студенте нет - пробный урок доступен",
			repo: &fakeCreditRepo{err: lessonCreditRepo.ErrCreditNotFound},
			want: true,
		},
		{
			name: "пробный урок не использован",
			repo: &fakeCreditRepo{credit: &domain.LessonCredit{Email: "s@e.com", UsedTrial: false}},
			want: true,
		},
		{
			name: "пробный урок уже использован",
			repo: &fakeCreditRepo{credit: &domain.LessonCredit{Email: "s@e.com", UsedTrial: true}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.repo, nopLogger{})

			got, err := svc.IsTrialAvailable(context.Background(), "s@e.com")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
