package registration

import (
	"context"
	"errors"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/zero-defect-summit/event-registration/events"
	"github.com/zero-defect-summit/event-registration/razorpay"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/zero-defect-summit/event-registration/registration"

const (
	NoteName       = "name"
	NoteEmail      = "email"
	NoteMobile     = "mobile"
	NoteCompany    = "company"
	NoteDepartment = "department"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, params razorpay.OrderParams) (razorpay.Order, error)
}

type OrderInfo struct {
	OrderID        string
	Amount         *money.Money
	PublishableKey string
}

// CreatePaymentOrder opens a gateway order for the workshop fee. The attendee
// rides along as order notes so the webhook gets it back without any local
// correlation state.
func CreatePaymentOrder(ctx context.Context, input RegistrationInput, workshop events.Workshop, orderCreator OrderCreator) (OrderInfo, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "CreatePaymentOrder")
	defer span.End()

	attendee, err := Validate(input)
	if err != nil {
		return OrderInfo{}, err
	}

	amount, err := workshop.TotalFee()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fee calculation failed")
		return OrderInfo{}, NewFailedToCreateOrderError("Failed to calculate workshop fee", err)
	}
	span.SetAttributes(
		attribute.Int64("order.amount", amount.Amount()),
		attribute.String("order.currency", amount.Currency().Code),
	)

	order, err := orderCreator.CreateOrder(ctx, razorpay.OrderParams{
		Amount:  amount,
		Receipt: uuid.NewString(),
		Notes:   attendeeToNotes(attendee),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order creation failed")

		var rzpErr *razorpay.Error
		if errors.As(err, &rzpErr) && rzpErr.Reason == razorpay.REASON_NOT_CONFIGURED {
			return OrderInfo{}, NewPaymentNotConfiguredError("Payment gateway credentials are missing", err)
		}
		return OrderInfo{}, NewFailedToCreateOrderError("Payment gateway rejected the order", err)
	}
	span.SetAttributes(attribute.String("order.id", order.ID))

	return OrderInfo{
		OrderID:        order.ID,
		Amount:         amount,
		PublishableKey: order.KeyID,
	}, nil
}

func attendeeToNotes(a Attendee) razorpay.Notes {
	department := ""
	if a.Department != nil {
		department = *a.Department
	}

	return razorpay.Notes{
		NoteName:       a.Name,
		NoteEmail:      a.Email,
		NoteMobile:     a.Mobile,
		NoteCompany:    a.Company,
		NoteDepartment: department,
	}
}
