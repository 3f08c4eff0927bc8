package book_trial_session

import (
	"context"

	bookTrialSession "github.com/m04kA/TWS-LessonService/internal/usecase/book_trial_session"
)

type BookTrialSessionUseCase interface {
	Execute(ctx context.Context, req *bookTrialSession.Request) (*bookTrialSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
