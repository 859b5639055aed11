package razorpay

import (
	"bytes"
	"encoding/json"
)

const EventPaymentCaptured = "payment.captured"

// Notes is Razorpay's free form key/value metadata. The API sends an empty
// JSON array instead of an object when there are no notes.
type Notes map[string]string

func (n *Notes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("null")) {
		*n = Notes{}
		return nil
	}

	m := map[string]string{}
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return err
	}
	*n = m
	return nil
}

type Payment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Notes    Notes  `json:"notes"`
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment *struct {
			Entity Payment `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// ConfirmPayment authenticates a webhook delivery and returns the captured
// payment it carries. Events other than payment.captured come back as a
// REASON_NOT_PAYMENT_CAPTURED_EVENT error.
func (w *WebhookVerifier) ConfirmPayment(payload []byte, signature string) (Payment, error) {
	err := VerifySignature(payload, signature, w.secret)
	if err != nil {
		return Payment{}, err
	}

	var event webhookEvent
	err = json.Unmarshal(payload, &event)
	if err != nil {
		return Payment{}, NewMalformedEventError("Failed to decode webhook event", err)
	}

	if event.Event != EventPaymentCaptured {
		return Payment{}, NewNotPaymentCapturedEventError(event.Event)
	}

	if event.Payload.Payment == nil || event.Payload.Payment.Entity.ID == "" {
		return Payment{}, NewMalformedEventError("payment.captured event has no payment entity", nil)
	}

	payment := event.Payload.Payment.Entity
	if payment.Notes == nil {
		payment.Notes = Notes{}
	}

	return payment, nil
}
