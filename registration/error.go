package registration

import "fmt"

type ErrorReason string

const (
	REASON_INVALID_FIELD                   ErrorReason = "INVALID_FIELD"
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_REGISTRATION_DOES_NOT_EXIST     ErrorReason = "REGISTRATION_DOES_NOT_EXIST"
	REASON_REGISTRATION_ALREADY_EXISTS     ErrorReason = "REGISTRATION_ALREADY_EXISTS"
	REASON_PAYMENT_ALREADY_RECORDED        ErrorReason = "PAYMENT_ALREADY_RECORDED"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_INVALID_CURSOR                  ErrorReason = "INVALID_CURSOR"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
	REASON_PAYMENT_NOT_CONFIGURED          ErrorReason = "PAYMENT_NOT_CONFIGURED"
	REASON_FAILED_TO_CREATE_ORDER          ErrorReason = "FAILED_TO_CREATE_ORDER"
)

type Error struct {
	Reason ErrorReason
	// Field is set for REASON_INVALID_FIELD.
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidFieldError(field string, message string) *Error {
	err := newRegistrationError(REASON_INVALID_FIELD, message, nil)
	err.Field = field
	return err
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewRegistrationAlreadyExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_ALREADY_EXISTS, message, cause)
}

func NewPaymentAlreadyRecordedError(message string, cause error) *Error {
	return newRegistrationError(REASON_PAYMENT_ALREADY_RECORDED, message, cause)
}

func NewRegistrationDoesNotExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_DOES_NOT_EXIST, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewInvalidCursorError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_CURSOR, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newRegistrationError(REASON_TIMEOUT, message, nil)
}

func NewPaymentNotConfiguredError(message string, cause error) *Error {
	return newRegistrationError(REASON_PAYMENT_NOT_CONFIGURED, message, cause)
}

func NewFailedToCreateOrderError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_CREATE_ORDER, message, cause)
}
