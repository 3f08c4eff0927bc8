package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

const (
	conferenceSolutionMeet = "hangoutsMeet"
	reminderMethodEmail    = "email"
	reminderMethodPopup    = "popup"

	// tokenExpiryMargin запас до истечения токена, после которого он обновляется
	tokenExpiryMargin = time.Minute
)

// Config настройки клиента Google Calendar
type Config struct {
	BaseURL      string
	TokenURL     string
	APIKey       string
	ClientID     string
	ClientSecret string
	RefreshToken string
	Timezone     string
	EventSummary string
	Timeout      time.Duration
}

// Client клиент для работы с Google Calendar API.
// Чтение списка событий идет по API key, создание событий - по OAuth токену.
// Токен кэшируется и обновляется refresh-token grant'ом по истечении.
type Client struct {
	cfg        Config
	location   *time.Location
	httpClient *http.Client
	log        Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient создает новый экземпляр клиента Google Calendar
func NewClient(cfg Config, log Logger) (*Client, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", ErrInternal, cfg.Timezone, err)
	}

	return &Client{
		cfg:      cfg,
		location: location,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}, nil
}

// Location возвращает таймзону, в которой интерпретируются события на весь день
// и границы месяца
func (c *Client) Location() *time.Location {
	return c.location
}

// ListMonthEvents получает все неотмененные события календаря за период
func (c *Client) ListMonthEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error) {
	query := url.Values{}
	query.Set("timeMin", timeMin.Format(time.RFC3339))
	query.Set("timeMax", timeMax.Format(time.RFC3339))
	query.Set("key", c.cfg.APIKey)

	reqURL := fmt.Sprintf("%s/calendars/%s/events?%s", c.cfg.BaseURL, url.PathEscape(calendarID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var list eventsListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return extractEvents(list.Items, c.location)
}

// CreateEvent создает событие урока со ссылкой на видеоконференцию.
// Студент и тьютор добавляются как участники, тьютор помечается организатором,
// напоминания - email за сутки и popup за 10 минут до начала.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*CreatedEvent, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	event := eventResource{
		Summary:     c.cfg.EventSummary,
		Location:    "Online",
		Description: req.Description,
		Start:       eventTime{DateTime: req.StartDate, TimeZone: c.cfg.Timezone},
		End:         eventTime{DateTime: req.EndDate, TimeZone: c.cfg.Timezone},
		Attendees: []eventAttendee{
			{Email: req.StudentEmail},
			{Email: req.TutorEmail, Organizer: true, Resource: true},
		},
		ConferenceData: &conferenceData{
			CreateRequest: conferenceCreateRequest{
				RequestID:             uuid.NewString(),
				ConferenceSolutionKey: conferenceSolutionKey{Type: conferenceSolutionMeet},
			},
		},
		GuestsCanModify: true,
		Reminders: eventReminders{
			UseDefault: false,
			Overrides: []reminderOverride{
				{Method: reminderMethodEmail, Minutes: domain.ReminderEmailMinutes},
				{Method: reminderMethodPopup, Minutes: domain.ReminderPopupMinutes},
			},
		},
	}

	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/calendars/primary/events?conferenceDataVersion=1&sendUpdates=all", c.cfg.BaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var created createdEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Calendar event created: id=%s", created.ID)

	return &CreatedEvent{
		ID:        created.ID,
		EventLink: created.HTMLLink,
	}, nil
}

// token возвращает кэшированный access token, обновляя его по истечении
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpiryMargin)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("refresh_token", c.cfg.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create token request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

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

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	c.log.Info("Calendar access token refreshed, expires in %ds", token.ExpiresIn)

	return c.accessToken, nil
}
