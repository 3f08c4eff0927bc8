package get_month_schedule

import (
	"fmt"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TutorEmail == "" {
		return fmt.Errorf("%w: tutorEmail is required", ErrInvalidInput)
	}

	if req.Year < domain.MinScheduleYear || req.Year > domain.MaxScheduleYear {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}

	if req.Month < 0 || req.Month > 11 {
		return fmt.Errorf("%w: month %d is out of range", ErrInvalidInput, req.Month)
	}

	return nil
}
