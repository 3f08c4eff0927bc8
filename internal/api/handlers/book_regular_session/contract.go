package book_regular_session

import (
	"context"

	bookRegularSession "github.com/m04kA/TWS-LessonService/internal/usecase/book_regular_session"
)

type BookRegularSessionUseCase interface {
	Execute(ctx context.Context, req *bookRegularSession.Request) (*bookRegularSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
