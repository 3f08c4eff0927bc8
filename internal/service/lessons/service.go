package lessons

import (
	"context"
	"errors"
	"fmt"

	lessonCreditRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/lessoncredit"
)

// Service сервис для чтения данных о кредитах уроков студентов
type Service struct {
	creditRepo LessonCreditRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса уроков
func NewService(creditRepo LessonCreditRepository, logger Logger) *Service {
	return &Service{
		creditRepo: creditRepo,
		logger:     logger,
	}
}

// GetAvailableLessonCount возвращает количество доступных уроков студента
func (s *Service) GetAvailableLessonCount(ctx context.Context, email string) (int, error) {
	s.logger.Info("GetAvailableLessonCount: fetching credit for student=%s", email)

	credit, err := s.creditRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, lessonCreditRepo.ErrCreditNotFound) {
			s.logger.Warn("GetAvailableLessonCount: student %s not found", email)
			return 0, ErrStudentNotFound
		}
		s.logger.Error("GetAvailableLessonCount: repository error for student=%s: %v", email, err)
		return 0, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	return credit.AvailableLessons, nil
}

// IsTrialAvailable возвращает true, если студент еще не использовал пробный урок.
// Отсутствие записи о студенте означает, что пробный урок доступен.
func (s *Service) IsTrialAvailable(ctx context.Context, email string) (bool, error) {
	credit, err := s.creditRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, lessonCreditRepo.ErrCreditNotFound) {
			return true, nil
		}
		s.logger.Error("IsTrialAvailable: repository error for student=%s: %v", email, err)
		return false, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	return credit.CanBookTrial(), nil
}
