package prepare_payment_link

import (
	"errors"
	"net/http"

	"github.com/m04kA/TWS-LessonService/internal/api/handlers"
	paymentsService "github.com/m04kA/TWS-LessonService/internal/service/payments"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidInput           = "некорректные данные платежа"
	msgCredentialsNotFound    = "платежные реквизиты тьютора не найдены"
	msgPaymentLinkUnavailable = "оплата временно недоступна"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/link
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreparePaymentLinkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/link - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	link, err := h.service.PreparePaymentLink(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrInvalidInput):
			h.logger.Warn("POST /payments/link - Invalid input: student=%s, error=%v", req.StudentEmail, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, paymentsService.ErrCredentialsNotFound):
			h.logger.Warn("POST /payments/link - Credentials not found: tutor=%s", req.TutorEmail)
			handlers.RespondNotFound(w, msgCredentialsNotFound)

		case errors.Is(err, paymentsService.ErrPaymentLinkUnavailable):
			h.logger.Error("POST /payments/link - Payment link unavailable: tutor=%s, error=%v", req.TutorEmail, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPaymentLinkUnavailable)

		default:
			h.logger.Error("POST /payments/link - Failed to prepare link: tutor=%s, student=%s, error=%v",
				req.TutorEmail, req.StudentEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/link - Payment link prepared: tutor=%s, student=%s, quantity=%d",
		req.TutorEmail, req.StudentEmail, req.Quantity)
	handlers.RespondJSON(w, http.StatusOK, &PaymentLinkResponse{PaymentLink: link})
}
