package razorpay

import "fmt"

type ErrorReason string

const (
	REASON_NOT_CONFIGURED             ErrorReason = "NOT_CONFIGURED"
	REASON_REQUEST_FAILED             ErrorReason = "REQUEST_FAILED"
	REASON_UNEXPECTED_STATUS          ErrorReason = "UNEXPECTED_STATUS"
	REASON_INVALID_SIGNATURE          ErrorReason = "INVALID_SIGNATURE"
	REASON_MALFORMED_EVENT            ErrorReason = "MALFORMED_EVENT"
	REASON_NOT_PAYMENT_CAPTURED_EVENT ErrorReason = "NOT_PAYMENT_CAPTURED_EVENT"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRazorpayError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewNotConfiguredError(message string) *Error {
	return newRazorpayError(REASON_NOT_CONFIGURED, message, nil)
}

func NewRequestFailedError(message string, cause error) *Error {
	return newRazorpayError(REASON_REQUEST_FAILED, message, cause)
}

func NewUnexpectedStatusError(status int, body string) *Error {
	return newRazorpayError(REASON_UNEXPECTED_STATUS, fmt.Sprintf("Gateway responded %d: %s", status, body), nil)
}

func NewInvalidSignatureError(message string) *Error {
	return newRazorpayError(REASON_INVALID_SIGNATURE, message, nil)
}

func NewMalformedEventError(message string, cause error) *Error {
	return newRazorpayError(REASON_MALFORMED_EVENT, message, cause)
}

func NewNotPaymentCapturedEventError(eventType string) *Error {
	return newRazorpayError(REASON_NOT_PAYMENT_CAPTURED_EVENT, fmt.Sprintf("Ignoring event of type %q", eventType), nil)
}
