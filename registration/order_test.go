package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-defect-summit/event-registration/events"
	"github.com/zero-defect-summit/event-registration/ptr"
	"github.com/zero-defect-summit/event-registration/razorpay"
)

type mockOrderCreator struct {
	CreateOrderFunc func(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error)
}

func (m *mockOrderCreator) CreateOrder(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error) {
	return m.CreateOrderFunc(ctx, params)
}

func TestCreatePaymentOrder(t *testing.T) {
	t.Run("orders the full fee with attendee notes", func(t *testing.T) {
		var got razorpay.OrderParams
		creator := &mockOrderCreator{
			CreateOrderFunc: func(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error) {
				got = params
				return razorpay.Order{
					ID:       "order_9A33XWu170gUtm",
					Amount:   params.Amount.Amount(),
					Currency: params.Amount.Currency().Code,
					Status:   "created",
					KeyID:    "rzp_test_key",
				}, nil
			},
		}
		input := validInput()
		input.Email = "JANE@x.com"
		input.Department = ptr.String("QA")

		info, err := CreatePaymentOrder(context.Background(), input, events.ZeroDefectSummit, creator)
		require.NoError(t, err)

		assert.Equal(t, "order_9A33XWu170gUtm", info.OrderID)
		assert.Equal(t, int64(4130000), info.Amount.Amount())
		assert.Equal(t, "INR", info.Amount.Currency().Code)
		assert.Equal(t, "rzp_test_key", info.PublishableKey)

		assert.Equal(t, int64(4130000), got.Amount.Amount())
		assert.NotEmpty(t, got.Receipt)
		assert.Equal(t, razorpay.Notes{
			NoteName:       "Jane Doe",
			NoteEmail:      "jane@x.com",
			NoteMobile:     "9876543210",
			NoteCompany:    "Acme",
			NoteDepartment: "QA",
		}, got.Notes)
	})

	t.Run("each order gets its own receipt", func(t *testing.T) {
		receipts := map[string]bool{}
		creator := &mockOrderCreator{
			CreateOrderFunc: func(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error) {
				receipts[params.Receipt] = true
				return razorpay.Order{ID: "order_x"}, nil
			},
		}

		for range 3 {
			_, err := CreatePaymentOrder(context.Background(), validInput(), events.ZeroDefectSummit, creator)
			require.NoError(t, err)
		}
		assert.Len(t, receipts, 3)
	})

	t.Run("invalid input never calls the gateway", func(t *testing.T) {
		creator := &mockOrderCreator{
			CreateOrderFunc: func(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error) {
				t.Fatal("gateway should not be called")
				return razorpay.Order{}, nil
			},
		}
		input := validInput()
		input.Company = ""

		_, err := CreatePaymentOrder(context.Background(), input, events.ZeroDefectSummit, creator)
		var regErr *Error
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, REASON_INVALID_FIELD, regErr.Reason)
		assert.Equal(t, FieldCompany, regErr.Field)
	})

	t.Run("missing credentials", func(t *testing.T) {
		creator := &mockOrderCreator{
			CreateOrderFunc: func(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error) {
				return razorpay.Order{}, razorpay.NewNotConfiguredError("Razorpay credentials are not configured")
			},
		}

		_, err := CreatePaymentOrder(context.Background(), validInput(), events.ZeroDefectSummit, creator)
		var regErr *Error
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, REASON_PAYMENT_NOT_CONFIGURED, regErr.Reason)
	})

	t.Run("gateway rejects the order", func(t *testing.T) {
		creator := &mockOrderCreator{
			CreateOrderFunc: func(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error) {
				return razorpay.Order{}, razorpay.NewUnexpectedStatusError(400, `{"error":{"code":"BAD_REQUEST_ERROR"}}`)
			},
		}

		_, err := CreatePaymentOrder(context.Background(), validInput(), events.ZeroDefectSummit, creator)
		var regErr *Error
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, REASON_FAILED_TO_CREATE_ORDER, regErr.Reason)

		var rzpErr *razorpay.Error
		require.True(t, errors.As(err, &rzpErr))
		assert.Equal(t, razorpay.REASON_UNEXPECTED_STATUS, rzpErr.Reason)
	})
}
