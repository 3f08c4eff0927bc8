package googlecalendar

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateEventRequest запрос на создание события урока
type CreateEventRequest struct {
	Description  string
	StartDate    string // ISO-8601 с оффсетом, как пришло от клиента
	EndDate      string
	StudentEmail string
	TutorEmail   string
}

// CreatedEvent созданное событие
type CreatedEvent struct {
	ID        string
	EventLink string
}

// eventsListResponse ответ на список событий календаря
type eventsListResponse struct {
	Items []rawEvent `json:"items"`
}

// rawEvent запись события в том виде, в котором её отдает провайдер.
// Start/End содержат либо точный dateTime, либо только date (событие на весь день)
type rawEvent struct {
	Status string    `json:"status"`
	Start  eventTime `json:"start"`
	End    eventTime `json:"end"`
}

// eventTime время начала/окончания события
type eventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// eventResource тело запроса на создание события
type eventResource struct {
	Summary         string          `json:"summary"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	Start           eventTime       `json:"start"`
	End             eventTime       `json:"end"`
	Attendees       []eventAttendee `json:"attendees"`
	ConferenceData  *conferenceData `json:"conferenceData,omitempty"`
	GuestsCanModify bool            `json:"guestsCanModify"`
	Reminders       eventReminders  `json:"reminders"`
}

type eventAttendee struct {
	Email     string `json:"email"`
	Organizer bool   `json:"organizer,omitempty"`
	Resource  bool   `json:"resource,omitempty"`
}

type conferenceData struct {
	CreateRequest conferenceCreateRequest `json:"createRequest"`
}

type conferenceCreateRequest struct {
	RequestID             string                `json:"requestId"`
	ConferenceSolutionKey conferenceSolutionKey `json:"conferenceSolutionKey"`
}

type conferenceSolutionKey struct {
	Type string `json:"type"`
}

type eventReminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []reminderOverride `json:"overrides"`
}

type reminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// createdEventResponse ответ провайдера на создание события
type createdEventResponse struct {
	ID       string `json:"id"`
	HTMLLink string `json:"htmlLink"`
	Status   string `json:"status"`
}

// tokenResponse ответ OAuth endpoint на refresh-token grant
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// errorResponse модель ошибки провайдера
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
