package book_regular_session

// Request модель запроса на бронирование оплаченного урока
type Request struct {
	StudentEmail     string
	TutorEmail       string
	StartDate        string // ISO-8601 с оффсетом
	EndDate          string
	RequestedService string
}

// Response модель ответа с данными забронированной сессии
type Response struct {
	StudentEmail     string
	SessionTime      string
	EventLink        string
	RequestedService string
	RemainingLessons int
}
