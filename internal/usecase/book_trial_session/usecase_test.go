package book_trial_session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	lessonCreditRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/lessoncredit"
	tutorRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/tutor"
	"github.com/m04kA/TWS-LessonService/internal/integrations/googlecalendar"
)

type fakeCreditRepo struct {
	credit    *domain.LessonCredit
	getErr    error
	markErr   error
	markCalls int
	markEmail string
	markName  string
}

func (f *fakeCreditRepo) GetByEmail(_ context.Context, _ string) (*domain.LessonCredit, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.credit, nil
}

func (f *fakeCreditRepo) MarkTrialUsed(_ context.Context, email, name string, _ time.Time) error {
	f.markCalls++
	f.markEmail = email
	f.markName = name
	return f.markErr
}

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
	created *googlecalendar.CreatedEvent
	err     error
	calls   int
	lastReq googlecalendar.CreateEventRequest
}

func (f *fakeCalendarClient) CreateEvent(_ context.Context, req googlecalendar.CreateEventRequest) (*googlecalendar.CreatedEvent, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		StudentEmail:     "student@example.com",
		StudentName:      "Alice",
		TutorEmail:       "tutor@example.com",
		StartDate:        "2026-03-10T09:00:00+01:00",
		EndDate:          "2026-03-10T10:00:00+01:00",
		RequestedService: "English B2",
	}
}

func TestExecute_BooksTrialForNewStudent(t *testing.T) {
	creditRepo := &fakeCreditRepo{getErr: lessonCreditRepo.ErrCreditNotFound}
	tutors := &fakeTutorRepo{tutor: &domain.TutorInfo{Email: "tutor@example.com", CalendarID: "cal-1"}}
	calendar := &fakeCalendarClient{created: &googlecalendar.CreatedEvent{ID: "ev-1", EventLink: "https://meet/ev-1"}}

	uc := NewUseCase(creditRepo, tutors, calendar, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "student@example.com", resp.StudentEmail)
	assert.Equal(t, "2026-03-10T09:00:00+01:00", resp.SessionTime)
	assert.Equal(t, "https://meet/ev-1", resp.EventLink)
	assert.Equal(t, 1, calendar.calls)
	assert.Equal(t, 1, creditRepo.markCalls)
	assert.Equal(t, "student@example.com", creditRepo.markEmail)
	assert.Equal(t, "Alice", creditRepo.markName)
}

func TestExecute_TrialAlreadyUsed(t *testing.T) {
	creditRepo := &fakeCreditRepo{credit: &domain.LessonCredit{Email: "student@example.com", UsedTrial: true}}
	tutors := &fakeTutorRepo{tutor: &domain.TutorInfo{Email: "tutor@example.com"}}
	calendar := &fakeCalendarClient{}

	uc := NewUseCase(creditRepo, tutors, calendar, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrTrialAlreadyUsed)
	assert.Equal(t, 0, calendar.calls)
	assert.Equal(t, 0, creditRepo.markCalls)
}

func TestExecute_TutorNotFound(t *testing.T) {
	creditRepo := &fakeCreditRepo{getErr: lessonCreditRepo.ErrCreditNotFound}
	tutors := &fakeTutorRepo{err: tutorRepo.ErrTutorNotFound}
	calendar := &fakeCalendarClient{}

	uc := NewUseCase(creditRepo, tutors, calendar, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrTutorNotFound)
	assert.Equal(t, 0, calendar.calls)
}

func TestExecute_ProviderFailureDoesNotMarkTrial(t *testing.T) {
	creditRepo := &fakeCreditRepo{getErr: lessonCreditRepo.ErrCreditNotFound}
	tutors := &fakeTutorRepo{tutor: &domain.TutorInfo{Email: "tutor@example.com"}}
	calendar := &fakeCalendarClient{err: errors.New("calendar down")}

	uc := NewUseCase(creditRepo, tutors, calendar, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrProvider)
	assert.Equal(t, 0, creditRepo.markCalls)
}

func TestExecute_InvalidDates(t *testing.T) {
	uc := NewUseCase(&fakeCreditRepo{}, &fakeTutorRepo{}, &fakeCalendarClient{}, nopLogger{})

	req := validRequest()
	req.EndDate = req.StartDate

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}
