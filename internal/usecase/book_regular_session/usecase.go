package book_regular_session

import (
	"context"
	"errors"
	"fmt"

	lessonCreditRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/lessoncredit"
	tutorRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/tutor"
	"github.com/m04kA/TWS-LessonService/internal/integrations/googlecalendar"
)

// UseCase use case для бронирования оплаченного урока
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

// Execute выполняет use case бронирования оплаченного урока.
// Событие создается у провайдера до списания кредита, само списание -
// одиночный условный UPDATE, поэтому конкурентные запросы на один email
// не могут списать один и тот же урок дважды.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRegularSession: student=%s, tutor=%s, start=%s",
		req.StudentEmail, req.TutorEmail, req.StartDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookRegularSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Быстрая проверка баланса до похода к провайдеру
	credit, err := uc.creditRepo.GetByEmail(ctx, req.StudentEmail)
	if err != nil {
		if errors.Is(err, lessonCreditRepo.ErrCreditNotFound) {
			uc.logger.Warn("BookRegularSession: student %s not found", req.StudentEmail)
			return nil, ErrStudentNotFound
		}
		uc.logger.Error("BookRegularSession: failed to get credit for student=%s: %v", req.StudentEmail, err)
		return nil, fmt.Errorf("%w: failed to get lesson credit: %v", ErrInternal, err)
	}

	if !credit.HasAvailableLessons() {
		uc.logger.Warn("BookRegularSession: no available lessons for student=%s", req.StudentEmail)
		return nil, ErrNoAvailableLessons
	}

	// 3. Ищем тьютора в справочнике
	tutor, err := uc.tutorRepo.GetByEmail(ctx, req.TutorEmail)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			uc.logger.Warn("BookRegularSession: tutor %s not found", req.TutorEmail)
			return nil, ErrTutorNotFound
		}
		uc.logger.Error("BookRegularSession: failed to get tutor=%s: %v", req.TutorEmail, err)
		return nil, fmt.Errorf("%w: failed to get tutor: %v", ErrInternal, err)
	}

	// 4. Создаем событие у календарного провайдера.
	// Сбой провайдера на этом шаге не трогает баланс студента.
	event, err := uc.calendarClient.CreateEvent(ctx, googlecalendar.CreateEventRequest{
		Description:  buildEventDescription(credit.Name, req.RequestedService),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StudentEmail: req.StudentEmail,
		TutorEmail:   tutor.Email,
	})
	if err != nil {
		uc.logger.Error("BookRegularSession: failed to create event for student=%s: %v", req.StudentEmail, err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	// 5. Атомарно списываем урок
	updated, err := uc.creditRepo.ConsumeLesson(ctx, req.StudentEmail, uc.timeProvider.Now())
	if err != nil {
		switch {
		case errors.Is(err, lessonCreditRepo.ErrCreditNotFound):
			return nil, ErrStudentNotFound
		case errors.Is(err, lessonCreditRepo.ErrNoAvailableLessons):
			// Конкурентный запрос успел списать последний урок после
			// создания события - событие остается висеть у провайдера
			uc.logger.Error("BookRegularSession: lost race for last lesson, orphan event=%s, student=%s",
				event.EventLink, req.StudentEmail)
			return nil, ErrNoAvailableLessons
		default:
			uc.logger.Error("BookRegularSession: failed to consume lesson for student=%s: %v", req.StudentEmail, err)
			return nil, fmt.Errorf("%w: failed to consume lesson: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("BookRegularSession: session booked for student=%s, remaining=%d, event=%s",
		req.StudentEmail, updated.AvailableLessons, event.EventLink)

	return &Response{
		StudentEmail:     req.StudentEmail,
		SessionTime:      req.StartDate,
		EventLink:        event.EventLink,
		RequestedService: req.RequestedService,
		RemainingLessons: updated.AvailableLessons,
	}, nil
}
