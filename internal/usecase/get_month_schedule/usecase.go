package get_month_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	tutorRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/tutor"
	"github.com/m04kA/TWS-LessonService/internal/schedule"
)

// UseCase use case построения сетки занятости тьютора за месяц
type UseCase struct {
	tutorRepo      TutorRepository
	calendarClient CalendarClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tutorRepo TutorRepository, calendarClient CalendarClient, logger Logger) *UseCase {
	return &UseCase{
		tutorRepo:      tutorRepo,
		calendarClient: calendarClient,
		logger:         logger,
	}
}

// Execute выполняет use case построения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthSchedule: tutor=%s, year=%d, month=%d", req.TutorEmail, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим email тьютора в идентификатор календаря
	tutor, err := uc.tutorRepo.GetByEmail(ctx, req.TutorEmail)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			uc.logger.Warn("GetMonthSchedule: tutor %s not found", req.TutorEmail)
			return nil, ErrTutorNotFound
		}
		uc.logger.Error("GetMonthSchedule: failed to get tutor=%s: %v", req.TutorEmail, err)
		return nil, fmt.Errorf("%w: failed to get tutor: %v", ErrInternal, err)
	}

	// 3. Границы месяца в таймзоне календаря
	startOfMonth, endOfMonth := schedule.MonthBounds(req.Year, time.Month(req.Month+1), uc.calendarClient.Location())

	// 4. События за месяц, timeMax - полночь первого дня следующего месяца
	events, err := uc.calendarClient.ListMonthEvents(ctx, tutor.CalendarID, startOfMonth, endOfMonth.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetMonthSchedule: failed to list events for tutor=%s: %v", req.TutorEmail, err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	// 5. Сборка сетки занятости
	days := schedule.BuildMonthGrid(events, startOfMonth, endOfMonth)

	uc.logger.Info("GetMonthSchedule: built %d days from %d events for tutor=%s",
		len(days), len(events), req.TutorEmail)

	return &Response{Days: days}, nil
}
