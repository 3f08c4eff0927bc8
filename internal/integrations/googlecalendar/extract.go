package googlecalendar

import (
	"fmt"
	"time"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

// extractEvents конвертирует записи провайдера в доменные события.
// Отмененные события отбрасываются до попадания в расчеты занятости.
func extractEvents(items []rawEvent, loc *time.Location) ([]domain.CalendarEvent, error) {
	events := make([]domain.CalendarEvent, 0, len(items))

	for _, item := range items {
		if domain.EventStatus(item.Status) == domain.EventStatusCancelled {
			continue
		}

		event, err := extractEvent(item, loc)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// extractEvent разбирает одну запись события
func extractEvent(item rawEvent, loc *time.Location) (domain.CalendarEvent, error) {
	start, err := extractDate(item.Start, loc)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	end, err := extractDate(item.End, loc)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	return domain.CalendarEvent{
		StartDate: start,
		EndDate:   end,
		Status:    domain.EventStatus(item.Status),
	}, nil
}

// extractDate разбирает время события.
// Точный dateTime парсится с сохранением оффсета. Запись только с датой -
// событие на весь день, начинается в локальную полночь в зоне loc.
// Запись без обоих полей - ошибка, а не молчаливый nil.
func extractDate(et eventTime, loc *time.Location) (time.Time, error) {
	switch {
	case et.DateTime != "":
		t, err := time.Parse(time.RFC3339, et.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid dateTime %q: %v", ErrMalformedEvent, et.DateTime, err)
		}
		return t, nil

	case et.Date != "":
		t, err := time.ParseInLocation(domain.DateFormat, et.Date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid date %q: %v", ErrMalformedEvent, et.Date, err)
		}
		return t, nil

	default:
		return time.Time{}, fmt.Errorf("%w: record has neither dateTime nor date", ErrMalformedEvent)
	}
}
