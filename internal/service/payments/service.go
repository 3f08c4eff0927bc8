package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	lessonCreditRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/lessoncredit"
	credentialsRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/paymentcredential"
	"github.com/m04kA/TWS-LessonService/internal/integrations/paypal"
)

// Service сервис подготовки платежей
type Service struct {
	creditRepo    LessonCreditRepository
	credsRepo     CredentialsRepository
	paymentClient PaymentClient
	lessonPrice   float64
	currency      string
	logger        Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	creditRepo LessonCreditRepository,
	credsRepo CredentialsRepository,
	paymentClient PaymentClient,
	lessonPrice float64,
	currency string,
	logger Logger,
) *Service {
	return &Service{
		creditRepo:    creditRepo,
		credsRepo:     credsRepo,
		paymentClient: paymentClient,
		lessonPrice:   lessonPrice,
		currency:      currency,
		logger:        logger,
	}
}

// PreparePaymentLinkRequest запрос на подготовку ссылки оплаты
type PreparePaymentLinkRequest struct {
	TutorEmail   string
	StudentEmail string
	Quantity     int // 0 означает покупку одного урока
	SuccessURL   string
	CancelURL    string
}

// PreparePaymentLink создает платеж у провайдера и возвращает ссылку
// подтверждения (approval_url). Любой сбой провайдера или отсутствие ссылки
// в ответе трактуются как недоступность оплаты.
func (s *Service) PreparePaymentLink(ctx context.Context, req *PreparePaymentLinkRequest) (string, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := s.validateRequest(req, quantity); err != nil {
		s.logger.Warn("PreparePaymentLink: validation failed: %v", err)
		return "", err
	}

	s.logger.Info("PreparePaymentLink: tutor=%s, student=%s, quantity=%d",
		req.TutorEmail, req.StudentEmail, quantity)

	// 1. Получаем учетные данные тьютора
	creds, err := s.credsRepo.GetByTutorEmail(ctx, req.TutorEmail)
	if err != nil {
		if errors.Is(err, credentialsRepo.ErrCredentialsNotFound) {
			s.logger.Warn("PreparePaymentLink: credentials not found for tutor=%s", req.TutorEmail)
			return "", ErrCredentialsNotFound
		}
		s.logger.Error("PreparePaymentLink: failed to get credentials for tutor=%s: %v", req.TutorEmail, err)
		return "", fmt.Errorf("%w: failed to get credentials: %v", ErrInternal, err)
	}

	// 2. Считаем стоимость с учетом скидки за закрытие пакета
	allPaidLessons := 0
	credit, err := s.creditRepo.GetByEmail(ctx, req.StudentEmail)
	if err != nil && !errors.Is(err, lessonCreditRepo.ErrCreditNotFound) {
		s.logger.Error("PreparePaymentLink: failed to get credit for student=%s: %v", req.StudentEmail, err)
		return "", fmt.Errorf("%w: failed to get lesson credit: %v", ErrInternal, err)
	}
	if credit != nil {
		allPaidLessons = credit.AllPaidLessons
	}

	total := CalculateTotalPrice(quantity, allPaidLessons, s.lessonPrice)

	// 3. Метаданные покупки уходят структурированным полем, а не текстом описания
	custom, err := json.Marshal(domain.PurchaseInfo{
		Quantity:     quantity,
		StudentEmail: req.StudentEmail,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal purchase info: %v", ErrInternal, err)
	}

	// 4. Создаем платеж у провайдера
	payment, err := s.paymentClient.CreatePayment(ctx, paypal.Credentials{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
	}, paypal.CreatePaymentRequest{
		Total:       formatAmount(total),
		Currency:    s.currency,
		Description: fmt.Sprintf("Lesson quantity: %d, user email: %s", quantity, req.StudentEmail),
		Custom:      string(custom),
		ReturnURL:   req.SuccessURL,
		CancelURL:   req.CancelURL,
	})
	if err != nil {
		s.logger.Error("PreparePaymentLink: provider call failed for tutor=%s: %v", req.TutorEmail, err)
		return "", fmt.Errorf("%w: %v", ErrPaymentLinkUnavailable, err)
	}

	// 5. Ищем ссылку подтверждения
	approvalURL, ok := payment.ApprovalURL()
	if !ok {
		s.logger.Error("PreparePaymentLink: no approval_url in payment id=%s", payment.ID)
		return "", fmt.Errorf("%w: provider returned no approval_url", ErrPaymentLinkUnavailable)
	}

	s.logger.Info("PreparePaymentLink: payment id=%s prepared, total=%.2f %s", payment.ID, total, s.currency)
	return approvalURL, nil
}

// validateRequest валидирует входные данные запроса
func (s *Service) validateRequest(req *PreparePaymentLinkRequest, quantity int) error {
	if req.TutorEmail == "" {
		return fmt.Errorf("%w: tutorEmail is required", ErrInvalidInput)
	}
	if req.StudentEmail == "" {
		return fmt.Errorf("%w: studentEmail is required", ErrInvalidInput)
	}
	if req.SuccessURL == "" || req.CancelURL == "" {
		return fmt.Errorf("%w: successUrl and cancelUrl are required", ErrInvalidInput)
	}
	if quantity < domain.MinLessonQuantity || quantity > domain.MaxLessonQuantity {
		return fmt.Errorf("%w: quantity must be between %d and %d",
			ErrInvalidInput, domain.MinLessonQuantity, domain.MaxLessonQuantity)
	}
	return nil
}
