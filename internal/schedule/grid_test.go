package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

func occupiedHours(day domain.DayOccupancy) []int64 {
	var hours []int64
	for _, slot := range day.Hours {
		if slot.Occupied {
			hours = append(hours, slot.Time)
		}
	}
	return hours
}

func findDay(t *testing.T, days []domain.DayOccupancy, date int64) domain.DayOccupancy {
	t.Helper()
	for _, day := range days {
		if day.Date == date {
			return day
		}
	}
	t.Fatalf("day %d not found in grid", date)
	return domain.DayOccupancy{}
}

func TestBuildMonthGrid_EmptyMonth(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(2026, time.March, loc)

	days := BuildMonthGrid(nil, start, end)

	require.Len(t, days, 31)
	for _, day := range days {
		assert.Len(t, day.Hours, domain.HoursPerDay)
		assert.True(t, day.IsFree())
	}

	// Дни отсортированы по возрастанию, часы внутри дня тоже
	for i := 1; i < len(days); i++ {
		assert.Less(t, days[i-1].Date, days[i].Date)
	}
	for _, day := range days {
		for j := 1; j < len(day.Hours); j++ {
			assert.Less(t, day.Hours[j-1].Time, day.Hours[j].Time)
		}
	}
}

func TestBuildMonthGrid_HalfHourEventOccupiesOneHour(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(2026, time.March, loc)

	events := []domain.CalendarEvent{{
		StartDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, loc),
		EndDate:   time.Date(2026, time.March, 10, 9, 30, 0, 0, loc),
		Status:    domain.EventStatusConfirmed,
	}}

	days := BuildMonthGrid(events, start, end)
	day := findDay(t, days, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc).UnixMilli())

	require.Len(t, day.Hours, domain.HoursPerDay)
	assert.Equal(t, []int64{
		time.Date(2026, time.March, 10, 9, 0, 0, 0, loc).UnixMilli(),
	}, occupiedHours(day))
}

func TestBuildMonthGrid_EndWithMinutesOccupiesEndHour(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(2026, time.March, loc)

	events := []domain.CalendarEvent{{
		StartDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, loc),
		EndDate:   time.Date(2026, time.March, 10, 10, 30, 0, 0, loc),
		Status:    domain.EventStatusConfirmed,
	}}

	days := BuildMonthGrid(events, start, end)
	day := findDay(t, days, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc).UnixMilli())

	assert.Equal(t, []int64{
		time.Date(2026, time.March, 10, 9, 0, 0, 0, loc).UnixMilli(),
		time.Date(2026, time.March, 10, 10, 0, 0, 0, loc).UnixMilli(),
	}, occupiedHours(day))
}

func TestBuildMonthGrid_ExactHourEndDoesNotOccupyEndHour(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(2026, time.March, loc)

	events := []domain.CalendarEvent{{
		StartDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, loc),
		EndDate:   time.Date(2026, time.March, 10, 10, 0, 0, 0, loc),
		Status:    domain.EventStatusConfirmed,
	}}

	days := BuildMonthGrid(events, start, end)
	day := findDay(t, days, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc).UnixMilli())

	assert.Equal(t, []int64{
		time.Date(2026, time.March, 10, 9, 0, 0, 0, loc).UnixMilli(),
	}, occupiedHours(day))
}

func TestBuildMonthGrid_EventCrossingMidnight(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(2026, time.March, loc)

	events := []domain.CalendarEvent{{
		StartDate: time.Date(2026, time.March, 10, 23, 0, 0, 0, loc),
		EndDate:   time.Date(2026, time.March, 11, 1, 0, 0, 0, loc),
		Status:    domain.EventStatusConfirmed,
	}}

	days := BuildMonthGrid(events, start, end)

	day10 := findDay(t, days, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc).UnixMilli())
	assert.Equal(t, []int64{
		time.Date(2026, time.March, 10, 23, 0, 0, 0, loc).UnixMilli(),
	}, occupiedHours(day10))

	day11 := findDay(t, days, time.Date(2026, time.March, 11, 0, 0, 0, 0, loc).UnixMilli())
	assert.Equal(t, []int64{
		time.Date(2026, time.March, 11, 0, 0, 0, 0, loc).UnixMilli(),
	}, occupiedHours(day11))
}

func TestBuildMonthGrid_AllDayEvent(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(2026, time.March, loc)

	events := []domain.CalendarEvent{{
		StartDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2026, time.March, 11, 0, 0, 0, 0, loc),
		Status:    domain.EventStatusConfirmed,
	}}

	days := BuildMonthGrid(events, start, end)

	day10 := findDay(t, days, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc).UnixMilli())
	assert.Equal(t, domain.HoursPerDay, day10.OccupiedCount())

	day11 := findDay(t, days, time.Date(2026, time.March, 11, 0, 0, 0, 0, loc).UnixMilli())
	assert.True(t, day11.IsFree())
}

func TestBuildMonthGrid_CancelledEventsIgnored(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(2026, time.March, loc)

	events := []domain.CalendarEvent{{
		StartDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, loc),
		EndDate:   time.Date(2026, time.March, 10, 10, 30, 0, 0, loc),
		Status:    domain.EventStatusCancelled,
	}}

	days := BuildMonthGrid(events, start, end)
	day := findDay(t, days, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc).UnixMilli())

	assert.True(t, day.IsFree())
}

func TestBuildMonthGrid_OverlappingEventsUnion(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(2026, time.March, loc)

	events := []domain.CalendarEvent{
		{
			StartDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, loc),
			EndDate:   time.Date(2026, time.March, 10, 10, 30, 0, 0, loc),
			Status:    domain.EventStatusConfirmed,
		},
		{
			StartDate: time.Date(2026, time.March, 10, 10, 0, 0, 0, loc),
			EndDate:   time.Date(2026, time.March, 10, 11, 30, 0, 0, loc),
			Status:    domain.EventStatusConfirmed,
		},
	}

	days := BuildMonthGrid(events, start, end)
	day := findDay(t, days, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc).UnixMilli())

	assert.Equal(t, []int64{
		time.Date(2026, time.March, 10, 9, 0, 0, 0, loc).UnixMilli(),
		time.Date(2026, time.March, 10, 10, 0, 0, 0, loc).UnixMilli(),
		time.Date(2026, time.March, 10, 11, 0, 0, 0, loc).UnixMilli(),
	}, occupiedHours(day))
}

func TestBuildMonthGrid_EventInNonUTCZone(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	start, end := MonthBounds(2026, time.March, loc)

	events := []domain.CalendarEvent{{
		StartDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, loc),
		EndDate:   time.Date(2026, time.March, 10, 9, 30, 0, 0, loc),
		Status:    domain.EventStatusConfirmed,
	}}

	days := BuildMonthGrid(events, start, end)
	day := findDay(t, days, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc).UnixMilli())

	// Ключ часа - instant начала локального часа: 09:00+01:00 == 08:00 UTC
	assert.Equal(t, []int64{
		time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC).UnixMilli(),
	}, occupiedHours(day))
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2026, time.February, time.UTC)

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), end)

	// Високосный год
	start, end = MonthBounds(2028, time.February, time.UTC)
	assert.Equal(t, time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), end)
}
