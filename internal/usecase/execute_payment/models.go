package execute_payment

// Request запрос на исполнение одобренного платежа
type Request struct {
	TutorEmail string
	PaymentID  string
	PayerID    string
}

// Response результат исполнения платежа
type Response struct {
	StudentEmail     string
	CreditedLessons  int
	AvailableLessons int
	AllPaidLessons   int
}
