package book_regular_session

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentEmail == "" {
		return fmt.Errorf("%w: studentEmail is required", ErrInvalidInput)
	}

	if req.TutorEmail == "" {
		return fmt.Errorf("%w: tutorEmail is required", ErrInvalidInput)
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return fmt.Errorf("%w: invalid startDate format: %v", ErrInvalidInput, err)
	}

	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return fmt.Errorf("%w: invalid endDate format: %v", ErrInvalidInput, err)
	}

	if !end.After(start) {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	return nil
}

// buildEventDescription собирает описание события урока
func buildEventDescription(studentName, requestedService string) string {
	return fmt.Sprintf("<b>Student Name</b> \n%s<br>\n<b>Requested Service</b> \n%s",
		studentName, requestedService)
}
