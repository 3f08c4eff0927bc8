package execute_payment

import (
	"context"

	executePayment "github.com/m04kA/TWS-LessonService/internal/usecase/execute_payment"
)

type ExecutePaymentUseCase interface {
	Execute(ctx context.Context, req *executePayment.Request) (*executePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
