package get_trial_availability

import "context"

type LessonsService interface {
	IsTrialAvailable(ctx context.Context, email string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
