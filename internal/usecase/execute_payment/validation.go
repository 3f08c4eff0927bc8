package execute_payment

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TutorEmail == "" {
		return fmt.Errorf("%w: tutorEmail is required", ErrInvalidInput)
	}

	if req.PaymentID == "" {
		return fmt.Errorf("%w: paymentId is required", ErrInvalidInput)
	}

	if req.PayerID == "" {
		return fmt.Errorf("%w: payerId is required", ErrInvalidInput)
	}

	return nil
}
