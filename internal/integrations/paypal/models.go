package paypal

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Credentials учетные данные PayPal приложения тьютора
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// CreatePaymentRequest запрос на создание платежа
type CreatePaymentRequest struct {
	Total       string // сумма, отформатированная до 2 знаков
	Currency    string
	Description string
	Custom      string // структурированные метаданные покупки
	ReturnURL   string
	CancelURL   string
}

// Payment платеж провайдера
type Payment struct {
	ID           string        `json:"id"`
	Intent       string        `json:"intent"`
	State        string        `json:"state"`
	Payer        payer         `json:"payer"`
	Transactions []Transaction `json:"transactions"`
	Links        []Link        `json:"links"`
	RedirectURLs *redirectURLs `json:"redirect_urls,omitempty"`
}

// ApprovalURL возвращает ссылку подтверждения платежа (rel == "approval_url")
// и false, если провайдер её не вернул
func (p *Payment) ApprovalURL() (string, bool) {
	for _, link := range p.Links {
		if link.Rel == "approval_url" {
			return link.Href, true
		}
	}
	return "", false
}

// Transaction транзакция платежа
type Transaction struct {
	Amount      Amount `json:"amount"`
	Description string `json:"description,omitempty"`
	Custom      string `json:"custom,omitempty"`
}

// Amount сумма транзакции
type Amount struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// Link HATEOAS ссылка платежа
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

type payer struct {
	PaymentMethod string `json:"payment_method"`
}

type redirectURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

// paymentExecution тело запроса на исполнение платежа
type paymentExecution struct {
	PayerID string `json:"payer_id"`
}

// tokenResponse ответ OAuth endpoint на client-credentials grant
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// errorResponse модель ошибки провайдера
type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
