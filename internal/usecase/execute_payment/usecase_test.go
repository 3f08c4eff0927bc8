package execute_payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	"github.com/m04kA/TWS-LessonService/internal/integrations/paypal"
	"github.com/m04kA/TWS-LessonService/pkg/ptr"
)

type fakeCredentialRepo struct {
	creds         *domain.PaymentCredentials
	getErr        error
	setCalls      int
	setPaymentID  string
	setTutorEmail string
	setErr        error
}

func (f *fakeCredentialRepo) GetByTutorEmail(_ context.Context, _ string) (*domain.PaymentCredentials, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.creds, nil
}

func (f *fakeCredentialRepo) SetLastPaymentID(_ context.Context, tutorEmail, paymentID string) error {
	f.setCalls++
	f.setTutorEmail = tutorEmail
	f.setPaymentID = paymentID
	return f.setErr
}

type fakeCreditRepo struct {
	credited     *domain.LessonCredit
	creditErr    error
	creditCalls  int
	lastEmail    string
	lastQuantity int
}

func (f *fakeCreditRepo) CreditLessons(_ context.Context, email string, quantity int) (*domain.LessonCredit, error) {
	f.creditCalls++
	f.lastEmail = email
	f.lastQuantity = quantity
	if f.creditErr != nil {
		return nil, f.creditErr
	}
	return f.credited, nil
}

type fakePaymentClient struct {
	payment *paypal.Payment
	err     error
	calls   int
}

func (f *fakePaymentClient) ExecutePayment(_ context.Context, _ paypal.Credentials, _, _ string) (*paypal.Payment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payment, nil
}

// fakeTxManager выполняет функцию напрямую, без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		TutorEmail: "tutor@example.com",
		PaymentID:  "PAY-123",
		PayerID:    "PAYER-456",
	}
}

func executedPayment(custom string) *paypal.Payment {
	return &paypal.Payment{
		ID:    "PAY-123",
		State: "approved",
		Transactions: []paypal.Transaction{
			{Custom: custom},
		},
	}
}

func TestExecute_CreditsLessonsAndStoresPaymentID(t *testing.T) {
	credentialRepo := &fakeCredentialRepo{
		creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com", ClientID: "cid", ClientSecret: "secret"},
	}
	creditRepo := &fakeCreditRepo{
		credited: &domain.LessonCredit{Email: "student@example.com", AvailableLessons: 7, AllPaidLessons: 10},
	}
	payClient := &fakePaymentClient{
		payment: executedPayment(`{"quantity":5,"studentEmail":"student@example.com"}`),
	}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(credentialRepo, creditRepo, payClient, txMgr, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "student@example.com", resp.StudentEmail)
	assert.Equal(t, 5, resp.CreditedLessons)
	assert.Equal(t, 7, resp.AvailableLessons)
	assert.Equal(t, 10, resp.AllPaidLessons)

	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, 1, creditRepo.creditCalls)
	assert.Equal(t, "student@example.com", creditRepo.lastEmail)
	assert.Equal(t, 5, creditRepo.lastQuantity)
	assert.Equal(t, 1, credentialRepo.setCalls)
	assert.Equal(t, "PAY-123", credentialRepo.setPaymentID)
}

func TestExecute_PaymentAlreadyCompleted(t *testing.T) {
	credentialRepo := &fakeCredentialRepo{
		creds: &domain.PaymentCredentials{
			TutorEmail: "tutor@example.com",
			PaymentID:  ptr.Ptr("PAY-123"),
		},
	}
	payClient := &fakePaymentClient{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(credentialRepo, &fakeCreditRepo{}, payClient, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrPaymentAlreadyCompleted)
	// Повторный запрос не уходит к провайдеру и не трогает баланс
	assert.Equal(t, 0, payClient.calls)
	assert.Equal(t, 0, txMgr.calls)
}

func TestExecute_EmptyMetadata(t *testing.T) {
	credentialRepo := &fakeCredentialRepo{
		creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com"},
	}
	payClient := &fakePaymentClient{payment: executedPayment("")}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(credentialRepo, &fakeCreditRepo{}, payClient, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInvalidMetadata)
	assert.Equal(t, 0, txMgr.calls)
}

func TestExecute_MalformedMetadata(t *testing.T) {
	credentialRepo := &fakeCredentialRepo{
		creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com"},
	}
	payClient := &fakePaymentClient{payment: executedPayment(`{"quantity":0,"studentEmail":""}`)}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(credentialRepo, &fakeCreditRepo{}, payClient, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInvalidMetadata)
	assert.Equal(t, 0, txMgr.calls)
}

func TestExecute_ProviderFailure(t *testing.T) {
	credentialRepo := &fakeCredentialRepo{
		creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com"},
	}
	payClient := &fakePaymentClient{err: errors.New("paypal down")}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(credentialRepo, &fakeCreditRepo{}, payClient, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrProvider)
	assert.Equal(t, 0, txMgr.calls)
}

func TestExecute_TransactionFailure(t *testing.T) {
	credentialRepo := &fakeCredentialRepo{
		creds: &domain.PaymentCredentials{TutorEmail: "tutor@example.com"},
	}
	creditRepo := &fakeCreditRepo{creditErr: errors.New("db down")}
	payClient := &fakePaymentClient{
		payment: executedPayment(`{"quantity":1,"studentEmail":"student@example.com"}`),
	}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(credentialRepo, creditRepo, payClient, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, credentialRepo.setCalls)
}
