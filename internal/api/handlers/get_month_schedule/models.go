package get_month_schedule

import (
	getMonthSchedule "github.com/m04kA/TWS-LessonService/internal/usecase/get_month_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	TutorEmail string        `json:"tutorEmail"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Days       []DaySchedule `json:"days"`
}

// DaySchedule сетка занятости одного дня.
// Date - instant локальной полуночи в миллисекундах эпохи UTC.
type DaySchedule struct {
	Date  int64      `json:"date"`
	Hours []HourSlot `json:"hours"`
}

// HourSlot один часовой слот сетки
type HourSlot struct {
	Time     int64 `json:"time"`
	Occupied bool  `json:"occupied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(tutorEmail string, year, month int, resp *getMonthSchedule.Response) *ScheduleResponse {
	days := make([]DaySchedule, len(resp.Days))
	for i, day := range resp.Days {
		hours := make([]HourSlot, len(day.Hours))
		for j, hour := range day.Hours {
			hours[j] = HourSlot{
				Time:     hour.Time,
				Occupied: hour.Occupied,
			}
		}
		days[i] = DaySchedule{
			Date:  day.Date,
			Hours: hours,
		}
	}

	return &ScheduleResponse{
		TutorEmail: tutorEmail,
		Year:       year,
		Month:      month,
		Days:       days,
	}
}
