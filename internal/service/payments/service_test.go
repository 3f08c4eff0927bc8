package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	lessonCreditRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/lessoncredit"
	credentialsRepo "github.com/m04kA/TWS-LessonService/internal/infra/storage/paymentcredential"
	"github.com/m04kA/TWS-LessonService/internal/integrations/paypal"
)

type fakeCreditRepo struct {
	credit *domain.LessonCredit
	err    error
}

func (f *fakeCreditRepo) GetByEmail(_ context.Context, _ string) (*domain.LessonCredit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.credit, nil
}

type fakeCredsRepo struct {
	creds *domain.PaymentCredentials
	err   error
}

func (f *fakeCredsRepo) GetByTutorEmail(_ context.Context, _ string) (*domain.PaymentCredentials, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.creds, nil
}

type fakePaymentClient struct {
	payment *paypal.Payment
	err     error
	lastReq paypal.CreatePaymentRequest
}

func (f *fakePaymentClient) CreatePayment(_ context.Context, _ paypal.Credentials, req paypal.CreatePaymentRequest) (*paypal.Payment, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.payment, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func paymentWithApproval(url string) *paypal.Payment {
	return &paypal.Payment{
		ID: "PAY-123",
		Links: []paypal.Link{
			{Href: url, Rel: "approval_url"},
		},
	}
}

func validLinkRequest() *PreparePaymentLinkRequest {
	return &PreparePaymentLinkRequest{
		TutorEmail:   "tutor@example.com",
		StudentEmail: "student@example.com",
		Quantity:     5,
		SuccessURL:   "https://site/success",
		CancelURL:    "https://site/cancel",
	}
}

func newTestService(creditRepo *fakeCreditRepo, credsRepo *fakeCredsRepo, client *fakePaymentClient) *Service {
	return NewService(creditRepo, credsRepo, client, 15.0, "USD", nopLogger{})
}

func TestPreparePaymentLink(t *testing.T) {
	client := &fakePaymentClient{payment: paymentWithApproval("https://paypal/approve/PAY-123")}
	svc := newTestService(
		&fakeCreditRepo{err: lessonCreditRepo.ErrCreditNotFound},
		&fakeCredsRepo{creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com", ClientID: "cid", ClientSecret: "secret"}},
		client,
	)

	link, err := svc.PreparePaymentLink(context.Background(), validLinkRequest())

	require.NoError(t, err)
	assert.Equal(t, "https://paypal/approve/PAY-123", link)

	// Пакет из 5 уроков у нового студента закрывается со скидкой
	assert.Equal(t, "71.25", client.lastReq.Total)
	assert.Equal(t, "USD", client.lastReq.Currency)

	// Метаданные покупки уходят структурированным JSON в custom
	var purchase domain.PurchaseInfo
	require.NoError(t, json.Unmarshal([]byte(client.lastReq.Custom), &purchase))
	assert.Equal(t, 5, purchase.Quantity)
	assert.Equal(t, "student@example.com", purchase.StudentEmail)
}

func TestPreparePaymentLink_ZeroQuantityMeansOneLesson(t *testing.T) {
	client := &fakePaymentClient{payment: paymentWithApproval("https://paypal/approve/PAY-123")}
	svc := newTestService(
		&fakeCreditRepo{credit: &domain.LessonCredit{Email: "student@example.com", AllPaidLessons: 1}},
		&fakeCredsRepo{creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com"}},
		client,
	)

	req := validLinkRequest()
	req.Quantity = 0

	_, err := svc.PreparePaymentLink(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "15.00", client.lastReq.Total)

	var purchase domain.PurchaseInfo
	require.NoError(t, json.Unmarshal([]byte(client.lastReq.Custom), &purchase))
	assert.Equal(t, 1, purchase.Quantity)
}

func TestPreparePaymentLink_CredentialsNotFound(t *testing.T) {
	svc := newTestService(
		&fakeCreditRepo{},
		&fakeCredsRepo{err: credentialsRepo.ErrCredentialsNotFound},
		&fakePaymentClient{},
	)

	_, err := svc.PreparePaymentLink(context.Background(), validLinkRequest())

	require.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestPreparePaymentLink_ProviderFailure(t *testing.T) {
	svc := newTestService(
		&fakeCreditRepo{err: lessonCreditRepo.ErrCreditNotFound},
		&fakeCredsRepo{creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com"}},
		&fakePaymentClient{err: errors.New("paypal down")},
	)

	_, err := svc.PreparePaymentLink(context.Background(), validLinkRequest())

	require.ErrorIs(t, err, ErrPaymentLinkUnavailable)
}

func TestPreparePaymentLink_NoApprovalURL(t *testing.T) {
	svc := newTestService(
		&fakeCreditRepo{err: lessonCreditRepo.ErrCreditNotFound},
		&fakeCredsRepo{creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com"}},
		&fakePaymentClient{payment: &paypal.Payment{ID: "PAY-123"}},
	)

	_, err := svc.PreparePaymentLink(context.Background(), validLinkRequest())

	require.ErrorIs(t, err, ErrPaymentLinkUnavailable)
}

func TestPreparePaymentLink_InvalidQuantity(t *testing.T) {
	svc := newTestService(&fakeCreditRepo{}, &fakeCredsRepo{}, &fakePaymentClient{})

	req := validLinkRequest()
	req.Quantity = 101

	_, err := svc.PreparePaymentLink(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}
