package execute_payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	paymentCredentialRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/paymentcredential"
	"github.com/m04kA/TWS-LessonService/internal/integrations/paypal"
)

// UseCase use case исполнения одобренного платежа
type UseCase struct {
	credentialRepo PaymentCredentialRepository
	creditRepo     LessonCreditRepository
	paymentClient  PaymentClient
	txManager      TxManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	credentialRepo PaymentCredentialRepository,
	creditRepo LessonCreditRepository,
	paymentClient PaymentClient,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		credentialRepo: credentialRepo,
		creditRepo:     creditRepo,
		paymentClient:  paymentClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case исполнения платежа.
// Начисление уроков и фиксация payment id идут в одной serializable
// транзакции, повторный запрос с тем же payment id отклоняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExecutePayment: tutor=%s, payment=%s", req.TutorEmail, req.PaymentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExecutePayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем платежные реквизиты тьютора
	creds, err := uc.credentialRepo.GetByTutorEmail(ctx, req.TutorEmail)
	if err != nil {
		if errors.Is(err, paymentCredentialRepo.ErrCredentialsNotFound) {
			uc.logger.Warn("ExecutePayment: credentials for tutor %s not found", req.TutorEmail)
			return nil, ErrCredentialsNotFound
		}
		uc.logger.Error("ExecutePayment: failed to get credentials for tutor=%s: %v", req.TutorEmail, err)
		return nil, fmt.Errorf("%w: failed to get credentials: %v", ErrInternal, err)
	}

	// 3. Защита от повторного исполнения того же платежа
	if creds.IsCompleted(req.PaymentID) {
		uc.logger.Warn("ExecutePayment: payment %s already completed", req.PaymentID)
		return nil, ErrPaymentAlreadyCompleted
	}

	// 4. Исполняем платеж у провайдера
	executed, err := uc.paymentClient.ExecutePayment(ctx, paypal.Credentials{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
	}, req.PaymentID, req.PayerID)
	if err != nil {
		uc.logger.Error("ExecutePayment: provider failed for payment=%s: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	// 5. Достаем данные о покупке из метаданных транзакции
	purchase, err := extractPurchaseInfo(executed)
	if err != nil {
		uc.logger.Error("ExecutePayment: bad metadata in payment=%s: %v", req.PaymentID, err)
		return nil, err
	}

	// 6. Начисляем уроки и фиксируем payment id атомарно
	var credit *domain.LessonCredit
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var txErr error
		credit, txErr = uc.creditRepo.CreditLessons(ctx, purchase.StudentEmail, purchase.Quantity)
		if txErr != nil {
			return fmt.Errorf("failed to credit lessons: %w", txErr)
		}
		if txErr = uc.credentialRepo.SetLastPaymentID(ctx, req.TutorEmail, req.PaymentID); txErr != nil {
			return fmt.Errorf("failed to set payment id: %w", txErr)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ExecutePayment: failed to apply payment=%s: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ExecutePayment: credited %d lessons to student=%s, available=%d",
		purchase.Quantity, purchase.StudentEmail, credit.AvailableLessons)

	return &Response{
		StudentEmail:     purchase.StudentEmail,
		CreditedLessons:  purchase.Quantity,
		AvailableLessons: credit.AvailableLessons,
		AllPaidLessons:   credit.AllPaidLessons,
	}, nil
}

// extractPurchaseInfo разбирает метаданные покупки из поля custom транзакции
func extractPurchaseInfo(payment *paypal.Payment) (*domain.PurchaseInfo, error) {
	if len(payment.Transactions) == 0 {
		return nil, fmt.Errorf("%w: payment has no transactions", ErrInvalidMetadata)
	}

	custom := strings.TrimSpace(payment.Transactions[0].Custom)
	if custom == "" {
		return nil, fmt.Errorf("%w: empty custom field", ErrInvalidMetadata)
	}

	var purchase domain.PurchaseInfo
	if err := json.Unmarshal([]byte(custom), &purchase); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	if purchase.StudentEmail == "" || purchase.Quantity < 1 {
		return nil, fmt.Errorf("%w: missing student email or quantity", ErrInvalidMetadata)
	}

	return &purchase, nil
}
