package prepare_payment_link

import (
	"context"

	paymentsService "github.com/m04kA/TWS-LessonService/internal/service/payments"
)

type PaymentsService interface {
	PreparePaymentLink(ctx context.Context, req *paymentsService.PreparePaymentLinkRequest) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
