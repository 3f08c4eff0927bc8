package get_month_schedule

import (
	"context"
	"time"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

// TutorRepository интерфейс справочника тьюторов
type TutorRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.TutorInfo, error)
}

// CalendarClient интерфейс календарного провайдера
type CalendarClient interface {
	ListMonthEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error)
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
