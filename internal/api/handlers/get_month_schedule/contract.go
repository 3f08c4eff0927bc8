package get_month_schedule

import (
	"context"

	getMonthSchedule "github.com/m04kA/TWS-LessonService/internal/usecase/get_month_schedule"
)

type GetMonthScheduleUseCase interface {
	Execute(ctx context.Context, req *getMonthSchedule.Request) (*getMonthSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
