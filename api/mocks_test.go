package api

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/google/uuid"
	"github.com/zero-defect-summit/event-registration/events"
	"github.com/zero-defect-summit/event-registration/razorpay"
	"github.com/zero-defect-summit/event-registration/ratelimit"
	"github.com/zero-defect-summit/event-registration/registration"
)

var noopLogger = slog.New(slog.DiscardHandler)

const (
	testAdminKey      = "admin-secret"
	testWebhookSecret = "whsec_api_test"
)

var _ DB = &mockDB{}

type mockDB struct {
	mu    sync.Mutex
	calls int

	CreateRegistrationFunc          func(ctx context.Context, reg registration.Registration) (registration.Registration, error)
	CreateConfirmedRegistrationFunc func(ctx context.Context, reg registration.Registration) (registration.Registration, error)
	GetRegistrationFunc             func(ctx context.Context, id uuid.UUID) (registration.Registration, error)
	ListRegistrationsFunc           func(ctx context.Context, limit int32, cursor *string) (registration.ListRegistrationsResponse, error)
	PingFunc                        func(ctx context.Context) error
}

func (m *mockDB) record() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
}

// Calls counts store calls, excluding Ping.
func (m *mockDB) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockDB) CreateRegistration(ctx context.Context, reg registration.Registration) (registration.Registration, error) {
	m.record()
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	reg.ID = uuid.New()
	return reg, nil
}

func (m *mockDB) CreateConfirmedRegistration(ctx context.Context, reg registration.Registration) (registration.Registration, error) {
	m.record()
	if m.CreateConfirmedRegistrationFunc != nil {
		return m.CreateConfirmedRegistrationFunc(ctx, reg)
	}
	reg.ID = uuid.New()
	return reg, nil
}

func (m *mockDB) GetRegistration(ctx context.Context, id uuid.UUID) (registration.Registration, error) {
	m.record()
	if m.GetRegistrationFunc != nil {
		return m.GetRegistrationFunc(ctx, id)
	}
	return registration.Registration{}, registration.NewRegistrationDoesNotExistsError("not found", nil)
}

func (m *mockDB) ListRegistrations(ctx context.Context, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
	m.record()
	if m.ListRegistrationsFunc != nil {
		return m.ListRegistrationsFunc(ctx, limit, cursor)
	}
	return registration.ListRegistrationsResponse{}, nil
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

type mockOrderCreator struct {
	CreateOrderFunc func(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error)
}

func (m *mockOrderCreator) CreateOrder(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, params)
	}
	return razorpay.Order{ID: "order_test", Amount: params.Amount.Amount(), Currency: params.Amount.Currency().Code, KeyID: "rzp_test_key"}, nil
}

type mockPaymentVerifier struct {
	ConfirmPaymentFunc func(payload []byte, signature string) (razorpay.Payment, error)
}

func (m *mockPaymentVerifier) ConfirmPayment(payload []byte, signature string) (razorpay.Payment, error) {
	if m.ConfirmPaymentFunc != nil {
		return m.ConfirmPaymentFunc(payload, signature)
	}
	return razorpay.Payment{}, errors.New("ConfirmPayment not expected")
}

type mockEmailSender struct {
	mu   sync.Mutex
	sent []email.Email
	err  error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, e)
	return m.err
}

func (m *mockEmailSender) Sent() []email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.Email(nil), m.sent...)
}

type mockLimiter struct {
	AllowFunc func(clientKey string) error
}

func (m *mockLimiter) Allow(clientKey string) error {
	if m.AllowFunc != nil {
		return m.AllowFunc(clientKey)
	}
	return nil
}

type testDeps struct {
	db              *mockDB
	orderCreator    *mockOrderCreator
	paymentVerifier registration.PaymentVerifier
	emailSender     *mockEmailSender
	limiter         RateLimiter
	settings        Settings
}

func newTestDeps() *testDeps {
	return &testDeps{
		db:              &mockDB{},
		orderCreator:    &mockOrderCreator{},
		paymentVerifier: razorpay.NewWebhookVerifier(testWebhookSecret),
		emailSender:     &mockEmailSender{},
		limiter:         ratelimit.NewLimiter(ratelimit.DefaultLimit, ratelimit.DefaultWindow),
		settings: Settings{
			Workshop:         events.ZeroDefectSummit,
			AllowedOrigins:   []string{"https://zero-defect-summit.vercel.app"},
			AdminAPIKey:      testAdminKey,
			EmailFromAddress: "Zero Defect Summit <info@zerodefectsummit.in>",
		},
	}
}

func (d *testDeps) api() *API {
	return NewAPI(d.db, noopLogger, LOCAL, d.orderCreator, d.paymentVerifier, d.emailSender, d.limiter, d.settings)
}
