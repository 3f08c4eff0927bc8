package prepare_payment_link

import (
	paymentsService "github.com/m04kA/TWS-LessonService/internal/service/payments"
)

// PreparePaymentLinkRequest HTTP request model
type PreparePaymentLinkRequest struct {
	TutorEmail   string `json:"tutorEmail"`
	StudentEmail string `json:"studentEmail"`
	Quantity     int    `json:"quantity,omitempty"` // 0 означает покупку одного урока
	SuccessURL   string `json:"successUrl"`
	CancelURL    string `json:"cancelUrl"`
}

// PaymentLinkResponse HTTP response model
type PaymentLinkResponse struct {
	PaymentLink string `json:"paymentLink"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *PreparePaymentLinkRequest) ToServiceRequest() *paymentsService.PreparePaymentLinkRequest {
	return &paymentsService.PreparePaymentLinkRequest{
		TutorEmail:   r.TutorEmail,
		StudentEmail: r.StudentEmail,
		Quantity:     r.Quantity,
		SuccessURL:   r.SuccessURL,
		CancelURL:    r.CancelURL,
	}
}
