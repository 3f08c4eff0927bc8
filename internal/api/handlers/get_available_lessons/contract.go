package get_available_lessons

import "context"

type LessonsService interface {
	GetAvailableLessonCount(ctx context.Context, email string) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
