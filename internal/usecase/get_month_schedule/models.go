package get_month_schedule

import "github.com/m04kA/TWS-LessonService/internal/domain"

// Request запрос расписания тьютора за месяц
type Request struct {
	TutorEmail string
	Year       int
	// Month нумеруется с нуля: 0 - январь, 11 - декабрь
	Month int
}

// Response расписание занятости по дням месяца
type Response struct {
	Days []domain.DayOccupancy
}
