package execute_payment

import (
	"context"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	"github.com/m04kA/TWS-LessonService/internal/integrations/paypal"
)

// PaymentCredentialRepository интерфейс для работы с платежными реквизитами
type PaymentCredentialRepository interface {
	GetByTutorEmail(ctx context.Context, tutorEmail string) (*domain.PaymentCredentials, error)
	SetLastPaymentID(ctx context.Context, tutorEmail, paymentID string) error
}

// LessonCreditRepository интерфейс для работы с балансом уроков
type LessonCreditRepository interface {
	CreditLessons(ctx context.Context, email string, quantity int) (*domain.LessonCredit, error)
}

// PaymentClient интерфейс платежного провайдера
type PaymentClient interface {
	ExecutePayment(ctx context.Context, creds paypal.Credentials, paymentID, payerID string) (*paypal.Payment, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
