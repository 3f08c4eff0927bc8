package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

// BuildMonthGrid строит сетку занятости по часам для каждого дня месяца.
//
// Каждое событие разворачивается в набор занятых часов: обход идет от начала
// события с шагом в 1 час до достижения часа окончания. Час окончания с
// ненулевыми минутами считается занятым (событие до 14:30 занимает час 14:00),
// окончание ровно в начале часа этот час не занимает. При пересечении локальной
// полуночи накопленные часы закрываются в день, в котором шел обход, и
// начинается новый день.
//
// Часы всех событий объединяются по дням (повторно занятый час остается
// занятым), после чего каждый день окна [startOfMonth, endOfMonth] добивается
// до 24 слотов свободными часами. Дни без событий получают полностью свободную
// сетку.
//
// Ключи нормализованы к UTC: день - instant локальной полуночи, час - instant
// начала локального часа, оба в миллисекундах эпохи. Результат отсортирован по
// возрастанию, внутри дня часы по возрастанию.
func BuildMonthGrid(events []domain.CalendarEvent, startOfMonth, endOfMonth time.Time) []domain.DayOccupancy {
	dayHours := make(map[int64]map[int64]bool)

	for _, event := range events {
		if event.IsCancelled() {
			continue
		}
		mergeDayHours(dayHours, markEventHours(event))
	}

	fillMissingHours(dayHours, startOfMonth, endOfMonth)

	return toDayOccupancies(dayHours)
}

// MonthBounds возвращает границы месяца: локальную полночь первого и
// последнего дня в указанной таймзоне
func MonthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	startOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// День 0 следующего месяца нормализуется в последний день текущего
	endOfMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	return startOfMonth, endOfMonth
}

// markEventHours разворачивает одно событие в занятые часы, сгруппированные по дням.
// Обход ведется в таймзоне самого события.
func markEventHours(event domain.CalendarEvent) map[int64]map[int64]bool {
	result := make(map[int64]map[int64]bool)

	cursor := event.StartDate
	end := event.EndDate
	if !cursor.Before(end) {
		return result
	}

	endHour := truncateToHour(end)
	dayKey := localMidnight(cursor).UnixMilli()
	hours := make(map[int64]bool)

	for cursor.Before(end) {
		// Пересекли локальную полночь - закрываем накопленный день
		if key := localMidnight(cursor).UnixMilli(); key != dayKey {
			result[dayKey] = hours
			dayKey = key
			hours = make(map[int64]bool)
		}

		hourStart := truncateToHour(cursor)
		hours[hourStart.UnixMilli()] = true

		// Час окончания достигнут - дальше не идем, даже если минуты
		// окончания ненулевые
		if hourStart.Equal(endHour) {
			break
		}

		cursor = hourStart.Add(time.Hour)
	}

	result[dayKey] = hours
	return result
}

// mergeDayHours объединяет занятые часы события в общую сетку.
// Для дня, встреченного повторно, множества занятых часов объединяются.
func mergeDayHours(into map[int64]map[int64]bool, from map[int64]map[int64]bool) {
	for day, hours := range from {
		existing, ok := into[day]
		if !ok {
			into[day] = hours
			continue
		}
		for hour, occupied := range hours {
			if occupied {
				existing[hour] = true
			}
		}
	}
}

// fillMissingHours добивает каждый день окна до 24 слотов.
// Отсутствующие часы вставляются свободными, занятые не перезаписываются.
func fillMissingHours(dayHours map[int64]map[int64]bool, startOfMonth, endOfMonth time.Time) {
	for day := startOfMonth; !day.After(endOfMonth); day = day.AddDate(0, 0, 1) {
		key := day.UnixMilli()

		hours, ok := dayHours[key]
		if !ok {
			hours = make(map[int64]bool, domain.HoursPerDay)
			dayHours[key] = hours
		}

		for i := 0; i < domain.HoursPerDay; i++ {
			ts := time.Date(day.Year(), day.Month(), day.Day(), i, 0, 0, 0, day.Location()).UnixMilli()
			if _, exists := hours[ts]; !exists {
				hours[ts] = false
			}
		}
	}
}

// toDayOccupancies конвертирует сетку в отсортированный список дней
func toDayOccupancies(dayHours map[int64]map[int64]bool) []domain.DayOccupancy {
	days := make([]int64, 0, len(dayHours))
	for day := range dayHours {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	result := make([]domain.DayOccupancy, 0, len(days))
	for _, day := range days {
		hours := dayHours[day]

		timestamps := make([]int64, 0, len(hours))
		for ts := range hours {
			timestamps = append(timestamps, ts)
		}
		sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

		slots := make([]domain.HourSlot, 0, len(timestamps))
		for _, ts := range timestamps {
			slots = append(slots, domain.HourSlot{Time: ts, Occupied: hours[ts]})
		}

		result = append(result, domain.DayOccupancy{Date: day, Hours: slots})
	}

	return result
}

// localMidnight возвращает полночь дня, к которому относится t, в зоне t
func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// truncateToHour обнуляет минуты, секунды и наносекунды, сохраняя зону
func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
