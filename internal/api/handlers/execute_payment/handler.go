package execute_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/TWS-LessonService/internal/api/handlers"
	executePayment "github.com/m04kA/TWS-LessonService/internal/usecase/execute_payment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные платежа"
	msgCredentialsNotFound = "платежные реквизиты тьютора не найдены"
	msgPaymentAlreadyDone  = "платеж уже был исполнен"
	msgInvalidMetadata     = "платеж не содержит данных о покупке"
	msgProviderError       = "платежный провайдер недоступен"
)

type Handler struct {
	useCase ExecutePaymentUseCase
	logger  Logger
}

func NewHandler(useCase ExecutePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/execute
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExecutePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/execute - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, executePayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/execute - Invalid input: tutor=%s, error=%v", req.TutorEmail, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, executePayment.ErrCredentialsNotFound):
			h.logger.Warn("POST /payments/execute - Credentials not found: tutor=%s", req.TutorEmail)
			handlers.RespondNotFound(w, msgCredentialsNotFound)

		case errors.Is(err, executePayment.ErrPaymentAlreadyCompleted):
			h.logger.Warn("POST /payments/execute - Payment already completed: payment=%s", req.PaymentID)
			handlers.RespondError(w, http.StatusConflict, msgPaymentAlreadyDone)

		case errors.Is(err, executePayment.ErrInvalidMetadata):
			h.logger.Error("POST /payments/execute - Invalid metadata: payment=%s, error=%v", req.PaymentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgInvalidMetadata)

		case errors.Is(err, executePayment.ErrProvider):
			h.logger.Error("POST /payments/execute - Provider error: payment=%s, error=%v", req.PaymentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)

		default:
			h.logger.Error("POST /payments/execute - Failed to execute payment: tutor=%s, payment=%s, error=%v",
				req.TutorEmail, req.PaymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /payments/execute - Payment executed successfully: payment=%s, student=%s, credited=%d",
		req.PaymentID, result.StudentEmail, result.CreditedLessons)
	handlers.RespondJSON(w, http.StatusOK, response)
}
