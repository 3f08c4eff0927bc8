package book_trial_session

import (
	"context"
	"errors"
	"fmt"

	lessonCreditRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/lessoncredit"
	tutorRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/tutor"
	"github.com/m04kA/TWS-LessonService/internal/integrations/googlecalendar"
)

// UseCase use case для бронирования пробного урока
type UseCase struct {
	creditRepo     LessonCreditRepository
	tutorRepo      TutorRepository
	calendarClient CalendarClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	creditRepo LessonCreditRepository,
	tutorRepo TutorRepository,
	calendarClient CalendarClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		creditRepo:     creditRepo,
		tutorRepo:      tutorRepo,
		calendarClient: calendarClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case бронирования пробного урока.
// Пробный урок доступен студенту ровно один раз: повторный вызов для того же
// email завершается ErrTrialAlreadyUsed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookTrialSession: student=%s, tutor=%s, start=%s",
		req.StudentEmail, req.TutorEmail, req.StartDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookTrialSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что пробный урок еще не использован
	credit, err := uc.creditRepo.GetByEmail(ctx, req.StudentEmail)
	if err != nil && !errors.Is(err, lessonCreditRepo.ErrCreditNotFound) {
		uc.logger.Error("BookTrialSession: failed to get credit for student=%s: %v", req.StudentEmail, err)
		return nil, fmt.Errorf("%w: failed to get lesson credit: %v", ErrInternal, err)
	}
	if credit != nil && !credit.CanBookTrial() {
		uc.logger.Warn("BookTrialSession: trial already used by student=%s", req.StudentEmail)
		return nil, ErrTrialAlreadyUsed
	}

	// 3. Ищем тьютора в справочнике
	tutor, err := uc.tutorRepo.GetByEmail(ctx, req.TutorEmail)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			uc.logger.Warn("BookTrialSession: tutor %s not found", req.TutorEmail)
			return nil, ErrTutorNotFound
		}
		uc.logger.Error("BookTrialSession: failed to get tutor=%s: %v", req.TutorEmail, err)
		return nil, fmt.Errorf("%w: failed to get tutor: %v", ErrInternal, err)
	}

	// 4. Создаем событие у календарного провайдера
	event, err := uc.calendarClient.CreateEvent(ctx, googlecalendar.CreateEventRequest{
		Description:  buildEventDescription(req.StudentName, req.RequestedService),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StudentEmail: req.StudentEmail,
		TutorEmail:   tutor.Email,
	})
	if err != nil {
		uc.logger.Error("BookTrialSession: failed to create event for student=%s: %v", req.StudentEmail, err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	// 5. Идемпотентно фиксируем использование пробного урока
	if err := uc.creditRepo.MarkTrialUsed(ctx, req.StudentEmail, req.StudentName, uc.timeProvider.Now()); err != nil {
		uc.logger.Error("BookTrialSession: failed to mark trial used for student=%s: %v", req.StudentEmail, err)
		return nil, fmt.Errorf("%w: failed to mark trial used: %v", ErrInternal, err)
	}

	uc.logger.Info("BookTrialSession: trial session booked for student=%s, event=%s",
		req.StudentEmail, event.EventLink)

	return &Response{
		StudentEmail:     req.StudentEmail,
		SessionTime:      req.StartDate,
		EventLink:        event.EventLink,
		RequestedService: req.RequestedService,
	}, nil
}
