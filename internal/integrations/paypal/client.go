package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	paymentIntentSale = "sale"
	paymentMethod     = "paypal"

	// tokenExpiryMargin запас до истечения токена, после которого он обновляется
	tokenExpiryMargin = time.Minute
)

// cachedToken кэшированный access token одного приложения
type cachedToken struct {
	value  string
	expiry time.Time
}

// Client клиент для работы с PayPal REST API.
// Каждый тьютор приходит со своим приложением (client id/secret), поэтому
// токены кэшируются по client id и обновляются по истечении.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger

	mu     sync.Mutex
	tokens map[string]cachedToken
}

// NewClient создает новый экземпляр клиента PayPal
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:    log,
		tokens: make(map[string]cachedToken),
	}
}

// CreatePayment создает платеж с одной транзакцией.
// Метаданные покупки уходят в поле custom и возвращаются провайдером
// при исполнении платежа без изменений.
func (c *Client) CreatePayment(ctx context.Context, creds Credentials, req CreatePaymentRequest) (*Payment, error) {
	payment := Payment{
		Intent: paymentIntentSale,
		Payer:  payer{PaymentMethod: paymentMethod},
		Transactions: []Transaction{
			{
				Amount:      Amount{Currency: req.Currency, Total: req.Total},
				Description: req.Description,
				Custom:      req.Custom,
			},
		},
		RedirectURLs: &redirectURLs{
			ReturnURL: req.ReturnURL,
			CancelURL: req.CancelURL,
		},
	}

	var created Payment
	if err := c.post(ctx, creds, "/v1/payments/payment", payment, &created); err != nil {
		return nil, err
	}

	c.log.Info("PayPal payment created: id=%s, total=%s %s", created.ID, req.Total, req.Currency)
	return &created, nil
}

// ExecutePayment исполняет подтвержденный плательщиком платеж
func (c *Client) ExecutePayment(ctx context.Context, creds Credentials, paymentID, payerID string) (*Payment, error) {
	path := fmt.Sprintf("/v1/payments/payment/%s/execute", paymentID)

	var executed Payment
	if err := c.post(ctx, creds, path, paymentExecution{PayerID: payerID}, &executed); err != nil {
		return nil, err
	}

	c.log.Info("PayPal payment executed: id=%s, state=%s", executed.ID, executed.State)
	return &executed, nil
}

// post выполняет авторизованный POST запрос к API
func (c *Client) post(ctx context.Context, creds Credentials, path string, body interface{}, out interface{}) error {
	token, err := c.token(ctx, creds)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// token возвращает кэшированный access token приложения,
// запрашивая новый client-credentials grant'ом по истечении
func (c *Client) token(ctx context.Context, creds Credentials) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.tokens[creds.ClientID]; ok && time.Now().Before(cached.expiry.Add(-tokenExpiryMargin)) {
		return cached.value, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create token request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute token request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token endpoint returned %d: %s", ErrUnauthorized, resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: failed to decode token response: %v", ErrInvalidResponse, err)
	}

	c.tokens[creds.ClientID] = cachedToken{
		value:  token.AccessToken,
		expiry: time.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
	}

	c.log.Info("PayPal access token refreshed for client_id=%s, expires in %ds", creds.ClientID, token.ExpiresIn)

	return token.AccessToken, nil
}
