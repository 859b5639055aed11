package registration

import (
	"context"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

// DedupWindow is how long an email blocks another direct registration.
const DedupWindow = 24 * time.Hour

type PaymentStatus string

const (
	PAYMENT_STATUS_PENDING   PaymentStatus = "pending"
	PAYMENT_STATUS_COMPLETED PaymentStatus = "completed"
)

type Registration struct {
	ID uuid.UUID
	Attendee
	PaymentID     *string
	OrderID       *string
	PaymentStatus PaymentStatus
	Amount        *money.Money
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Repository interface {
	// CreateRegistration assigns the ID and timestamps and stores reg unless
	// the same email registered within DedupWindow.
	CreateRegistration(ctx context.Context, reg Registration) (Registration, error)
	// CreateConfirmedRegistration stores a paid registration keyed by its
	// payment ID, ignoring the email window.
	CreateConfirmedRegistration(ctx context.Context, reg Registration) (Registration, error)
	GetRegistration(ctx context.Context, id uuid.UUID) (Registration, error)
	ListRegistrations(ctx context.Context, limit int32, cursor *string) (ListRegistrationsResponse, error)
}

type ListRegistrationsResponse struct {
	Data        []Registration
	Cursor      *string
	HasNextPage bool
}

// AttemptRegistration validates the form and records a pending registration.
func AttemptRegistration(ctx context.Context, input RegistrationInput, orderID *string, registrationRepo Repository) (Registration, error) {
	attendee, err := Validate(input)
	if err != nil {
		return Registration{}, err
	}

	return registrationRepo.CreateRegistration(ctx, Registration{
		Attendee:      attendee,
		OrderID:       orderID,
		PaymentStatus: PAYMENT_STATUS_PENDING,
	})
}
