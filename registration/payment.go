package registration

import (
	"context"

	"github.com/Rhymond/go-money"
	"github.com/zero-defect-summit/event-registration/events"
	"github.com/zero-defect-summit/event-registration/razorpay"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type PaymentVerifier interface {
	ConfirmPayment(payload []byte, signature string) (razorpay.Payment, error)
}

// ConfirmRegistrationPayment turns a verified payment.captured delivery into a
// completed registration. Verifier errors are returned untouched so callers
// can tell a bad signature from an ignorable event.
func ConfirmRegistrationPayment(ctx context.Context, payload []byte, signature string, registrationRepo Repository, verifier PaymentVerifier) (Registration, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ConfirmRegistrationPayment")
	defer span.End()

	payment, err := verifier.ConfirmPayment(payload, signature)
	if err != nil {
		return Registration{}, err
	}
	span.SetAttributes(
		attribute.String("payment.id", payment.ID),
		attribute.String("order.id", payment.OrderID),
	)

	attendee, err := Validate(paymentToInput(payment))
	if err != nil {
		return Registration{}, err
	}

	currency := payment.Currency
	if currency == "" {
		currency = events.CurrencyINR
	}

	return registrationRepo.CreateConfirmedRegistration(ctx, Registration{
		Attendee:      attendee,
		PaymentID:     &payment.ID,
		OrderID:       nonEmpty(payment.OrderID),
		PaymentStatus: PAYMENT_STATUS_COMPLETED,
		Amount:        money.New(payment.Amount, currency),
	})
}

// paymentToInput prefers what the gateway collected over the echoed notes.
func paymentToInput(payment razorpay.Payment) RegistrationInput {
	email := payment.Email
	if email == "" {
		email = payment.Notes[NoteEmail]
	}

	mobile := payment.Contact
	if mobile == "" {
		mobile = payment.Notes[NoteMobile]
	}

	return RegistrationInput{
		Name:       payment.Notes[NoteName],
		Email:      email,
		Mobile:     mobile,
		Company:    payment.Notes[NoteCompany],
		Department: nonEmpty(payment.Notes[NoteDepartment]),
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
