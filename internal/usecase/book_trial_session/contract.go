package book_trial_session

import (
	"context"
	"time"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	"github.com/m04kA/TWS-LessonService/internal/integrations/googlecalendar"
)

// LessonCreditRepository интерфейс репозитория кредитов уроков
type LessonCreditRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.LessonCredit, error)
	MarkTrialUsed(ctx context.Context, email, name string, bookedAt time.Time) error
}

// TutorRepository интерфейс справочника тьюторов
type TutorRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.TutorInfo, error)
}

// CalendarClient интерфейс клиента календарного провайдера
type CalendarClient interface {
	CreateEvent(ctx context.Context, req googlecalendar.CreateEventRequest) (*googlecalendar.CreatedEvent, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
