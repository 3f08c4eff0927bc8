package payments

import (
	"context"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	"github.com/m04kA/TWS-LessonService/internal/integrations/paypal"
)

// LessonCreditRepository интерфейс репозитория кредитов уроков
type LessonCreditRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.LessonCredit, error)
}

// CredentialsRepository интерфейс репозитория учетных данных платежного провайдера
type CredentialsRepository interface {
	GetByTutorEmail(ctx context.Context, tutorEmail string) (*domain.PaymentCredentials, error)
}

// PaymentClient интерфейс клиента платежного провайдера
type PaymentClient interface {
	CreatePayment(ctx context.Context, creds paypal.Credentials, req paypal.CreatePaymentRequest) (*paypal.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
