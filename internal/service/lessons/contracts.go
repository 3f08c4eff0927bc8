package lessons

import (
	"context"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

// LessonCreditRepository интерфейс репозитория кредитов уроков
type LessonCreditRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.LessonCredit, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
