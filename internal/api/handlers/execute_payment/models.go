package execute_payment

import (
	executePayment "github.com/m04kA/TWS-LessonService/internal/usecase/execute_payment"
)

// ExecutePaymentRequest HTTP request model
type ExecutePaymentRequest struct {
	TutorEmail string `json:"tutorEmail"`
	PaymentID  string `json:"paymentId"`
	PayerID    string `json:"payerId"`
}

// ExecutePaymentResponse HTTP response model
type ExecutePaymentResponse struct {
	StudentEmail     string `json:"studentEmail"`
	CreditedLessons  int    `json:"creditedLessons"`
	AvailableLessons int    `json:"availableLessons"`
	AllPaidLessons   int    `json:"allPaidLessons"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ExecutePaymentRequest) ToUseCaseRequest() *executePayment.Request {
	return &executePayment.Request{
		TutorEmail: r.TutorEmail,
		PaymentID:  r.PaymentID,
		PayerID:    r.PayerID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *executePayment.Response) *ExecutePaymentResponse {
	return &ExecutePaymentResponse{
		StudentEmail:     resp.StudentEmail,
		CreditedLessons:  resp.CreditedLessons,
		AvailableLessons: resp.AvailableLessons,
		AllPaidLessons:   resp.AllPaidLessons,
	}
}
