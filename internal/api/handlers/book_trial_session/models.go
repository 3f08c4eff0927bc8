package book_trial_session

import (
	bookTrialSession "github.com/m04kA/TWS-LessonService/internal/usecase/book_trial_session"
)

// BookTrialSessionRequest HTTP request model
type BookTrialSessionRequest struct {
	StudentEmail     string `json:"studentEmail"`
	StudentName      string `json:"studentName"`
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
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookTrialSessionRequest) ToUseCaseRequest() *bookTrialSession.Request {
	return &bookTrialSession.Request{
		StudentEmail:     r.StudentEmail,
		StudentName:      r.StudentName,
		TutorEmail:       r.TutorEmail,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		RequestedService: r.RequestedService,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookTrialSession.Response) *SessionResponse {
	return &SessionResponse{
		StudentEmail:     resp.StudentEmail,
		SessionTime:      resp.SessionTime,
		EventLink:        resp.EventLink,
		RequestedService: resp.RequestedService,
	}
}
