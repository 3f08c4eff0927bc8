package get_month_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	tutorRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/tutor"
)

type fakeTutorRepo struct {
	tutor *domain.TutorInfo
	err   error
}

func (f *fakeTutorRepo) GetByEmail(_ context.Context, _ string) (*domain.TutorInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tutor, nil
}

type fakeCalendarClient struct {
	events       []domain.CalendarEvent
	err          error
	lastCalendar string
	lastTimeMin  time.Time
	lastTimeMax  time.Time
}

func (f *fakeCalendarClient) ListMonthEvents(_ context.Context, calendarID string, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error) {
	f.lastCalendar = calendarID
	f.lastTimeMin = timeMin
	f.lastTimeMax = timeMax
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeCalendarClient) Location() *time.Location {
	return time.UTC
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_BuildsFullMonthGrid(t *testing.T) {
	calendar := &fakeCalendarClient{
		events: []domain.CalendarEvent{{
			StartDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.March, 10, 10, 30, 0, 0, time.UTC),
			Status:    domain.EventStatusConfirmed,
		}},
	}
	tutors := &fakeTutorRepo{tutor: &domain.TutorInfo{Email: "tutor@example.com", CalendarID: "cal-1"}}

	uc := NewUseCase(tutors, calendar, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TutorEmail: "tutor@example.com",
		Year:       2026,
		Month:      2, // март
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 31)
	for _, day := range resp.Days {
		assert.Len(t, day.Hours, domain.HoursPerDay)
	}

	// Запрос ушел в календарь тьютора с границами месяца
	assert.Equal(t, "cal-1", calendar.lastCalendar)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), calendar.lastTimeMin)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), calendar.lastTimeMax)
}

func TestExecute_TutorNotFound(t *testing.T) {
	uc := NewUseCase(&fakeTutorRepo{err: tutorRepo.ErrTutorNotFound}, &fakeCalendarClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TutorEmail: "unknown@example.com",
		Year:       2026,
		Month:      2,
	})

	require.ErrorIs(t, err, ErrTutorNotFound)
}

func TestExecute_ProviderFailure(t *testing.T) {
	tutors := &fakeTutorRepo{tutor: &domain.TutorInfo{Email: "tutor@example.com", CalendarID: "cal-1"}}
	uc := NewUseCase(tutors, &fakeCalendarClient{err: errors.New("calendar down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TutorEmail: "tutor@example.com",
		Year:       2026,
		Month:      2,
	})

	require.ErrorIs(t, err, ErrProvider)
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := NewUseCase(&fakeTutorRepo{}, &fakeCalendarClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TutorEmail: "tutor@example.com",
		Year:       2026,
		Month:      12,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}
