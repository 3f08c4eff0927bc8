package book_regular_session

import (
	bookRegularSession "github.com/m04kA/TWS-LessonService/internal/usecase/book_regular_session"
)

// BookRegularSessionRequest HTTP request model
type BookRegularSessionRequest struct {
	StudentEmail     string `json:"studentEmail"`
	TutorEmail       string `json:"tutorEmail"`
	StartDate        string `json:"startDate"` // "2026-03-10T09:00:00+01:00"
	EndDate          string `json:"endDate"`
	RequestedService string `json:"requestedService"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	StudentEmail     string `json:"studentEmail"`
	SessionTime      string `json:"sessionTime"`
	EventLink        string `json:"eventLink"`
	RequestedService string `json:"requestedService"`
	RemainingLessons int    `json:"remainingLessons"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookRegularSessionRequest) ToUseCaseRequest() *bookRegularSession.Request {
	return &bookRegularSession.Request{
		StudentEmail:     r.StudentEmail,
		TutorEmail:       r.TutorEmail,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		RequestedService: r.RequestedService,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRegularSession.Response) *SessionResponse {
	return &SessionResponse{
		StudentEmail:     resp.StudentEmail,
		SessionTime:      resp.SessionTime,
		EventLink:        resp.EventLink,
		RequestedService: resp.RequestedService,
		RemainingLessons: resp.RemainingLessons,
	}
}
