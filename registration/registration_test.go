package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-defect-summit/event-registration/ptr"
)

var _ Repository = &mockRegistrationRepository{}

type mockRegistrationRepository struct {
	CreateRegistrationFunc          func(ctx context.Context, reg Registration) (Registration, error)
	CreateConfirmedRegistrationFunc func(ctx context.Context, reg Registration) (Registration, error)
	GetRegistrationFunc             func(ctx context.Context, id uuid.UUID) (Registration, error)
	ListRegistrationsFunc           func(ctx context.Context, limit int32, cursor *string) (ListRegistrationsResponse, error)
}

func (m *mockRegistrationRepository) CreateRegistration(ctx context.Context, reg Registration) (Registration, error) {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return Registration{}, errors.New("CreateRegistration not expected")
}

func (m *mockRegistrationRepository) CreateConfirmedRegistration(ctx context.Context, reg Registration) (Registration, error) {
	if m.CreateConfirmedRegistrationFunc != nil {
		return m.CreateConfirmedRegistrationFunc(ctx, reg)
	}
	return Registration{}, errors.New("CreateConfirmedRegistration not expected")
}

func (m *mockRegistrationRepository) GetRegistration(ctx context.Context, id uuid.UUID) (Registration, error) {
	if m.GetRegistrationFunc != nil {
		return m.GetRegistrationFunc(ctx, id)
	}
	return Registration{}, errors.New("GetRegistration not expected")
}

func (m *mockRegistrationRepository) ListRegistrations(ctx context.Context, limit int32, cursor *string) (ListRegistrationsResponse, error) {
	if m.ListRegistrationsFunc != nil {
		return m.ListRegistrationsFunc(ctx, limit, cursor)
	}
	return ListRegistrationsResponse{}, errors.New("ListRegistrations not expected")
}

// stampingRepo mimics the store assigning identity and timestamps.
func stampingRepo(calls *int) func(ctx context.Context, reg Registration) (Registration, error) {
	return func(ctx context.Context, reg Registration) (Registration, error) {
		*calls++
		reg.ID = uuid.New()
		reg.CreatedAt = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		reg.UpdatedAt = reg.CreatedAt
		return reg, nil
	}
}

func TestAttemptRegistration(t *testing.T) {
	t.Run("invalid input never reaches the store", func(t *testing.T) {
		calls := 0
		repo := &mockRegistrationRepository{CreateRegistrationFunc: stampingRepo(&calls)}
		input := validInput()
		input.Mobile = "12345"

		_, err := AttemptRegistration(context.Background(), input, nil, repo)
		require.Error(t, err)

		var regErr *Error
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, REASON_INVALID_FIELD, regErr.Reason)
		assert.Equal(t, FieldMobile, regErr.Field)
		assert.Equal(t, 0, calls)
	})

	t.Run("stores a pending registration with normalized fields", func(t *testing.T) {
		calls := 0
		var stored Registration
		repo := &mockRegistrationRepository{
			CreateRegistrationFunc: func(ctx context.Context, reg Registration) (Registration, error) {
				stored = reg
				return stampingRepo(&calls)(ctx, reg)
			},
		}
		input := validInput()
		input.Email = "Jane@X.com"
		input.Mobile = "+91 98765 43210"

		reg, err := AttemptRegistration(context.Background(), input, ptr.String("order_123"), repo)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)

		assert.Equal(t, "jane@x.com", stored.Email)
		assert.Equal(t, "9876543210", stored.Mobile)
		assert.Equal(t, PAYMENT_STATUS_PENDING, stored.PaymentStatus)
		assert.Nil(t, stored.PaymentID)
		assert.Equal(t, ptr.String("order_123"), stored.OrderID)

		assert.NotEqual(t, uuid.Nil, reg.ID)
		assert.False(t, reg.CreatedAt.IsZero())
	})

	t.Run("duplicate email error is passed through", func(t *testing.T) {
		repo := &mockRegistrationRepository{
			CreateRegistrationFunc: func(ctx context.Context, reg Registration) (Registration, error) {
				return Registration{}, NewRegistrationAlreadyExistsError("Registration for this email already exists", nil)
			},
		}

		_, err := AttemptRegistration(context.Background(), validInput(), nil, repo)
		require.Error(t, err)

		var regErr *Error
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, REASON_REGISTRATION_ALREADY_EXISTS, regErr.Reason)
	})
}
