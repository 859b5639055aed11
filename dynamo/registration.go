package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/zero-defect-summit/event-registration/registration"
)

var _ registration.Repository = &DB{}

const (
	registrationEntityName = "REGISTRATION"
	emailEntityName        = "EMAIL"
	paymentEntityName      = "PAYMENT"

	emailWindowSK = "DEDUP_WINDOW"

	conditionalCheckFailed = "ConditionalCheckFailed"
	transactionConflict    = "TransactionConflict"

	// gsi1Time sorts lexically in creation order.
	gsi1Time = "2006-01-02T15:04:05.000000000Z"
)

type registrationDynamo struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string

	ID            uuid.UUID
	Name          string
	Email         string
	Mobile        string
	Company       string
	Department    *string `dynamodbav:",omitempty"`
	PaymentID     *string `dynamodbav:",omitempty"`
	OrderID       *string `dynamodbav:",omitempty"`
	PaymentStatus registration.PaymentStatus
	// Amount is in minor units of Currency.
	Amount    *int64 `dynamodbav:",omitempty"`
	Currency  string `dynamodbav:",omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// emailWindowDynamo blocks direct registrations for an email until
// WindowExpiresAt (unix milliseconds).
type emailWindowDynamo struct {
	PK              string
	SK              string
	RegistrationID  uuid.UUID
	WindowExpiresAt int64
}

type paymentMarkerDynamo struct {
	PK             string
	SK             string
	RegistrationID uuid.UUID
}

func registrationKey(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", registrationEntityName, id)
}

func emailWindowPK(email string) string {
	return fmt.Sprintf("%s#%s", emailEntityName, email)
}

func paymentMarkerPK(paymentID string) string {
	return fmt.Sprintf("%s#%s", paymentEntityName, paymentID)
}

func registrationGSI1SK(createdAt time.Time, id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", createdAt.UTC().Format(gsi1Time), id)
}

func registrationToDynamo(reg registration.Registration) registrationDynamo {
	dynReg := registrationDynamo{
		PK:            registrationKey(reg.ID),
		SK:            registrationKey(reg.ID),
		GSI1PK:        registrationEntityName,
		GSI1SK:        registrationGSI1SK(reg.CreatedAt, reg.ID),
		ID:            reg.ID,
		Name:          reg.Name,
		Email:         reg.Email,
		Mobile:        reg.Mobile,
		Company:       reg.Company,
		Department:    reg.Department,
		PaymentID:     reg.PaymentID,
		OrderID:       reg.OrderID,
		PaymentStatus: reg.PaymentStatus,
		CreatedAt:     reg.CreatedAt,
		UpdatedAt:     reg.UpdatedAt,
	}
	if reg.Amount != nil {
		dynReg.Amount = aws.Int64(reg.Amount.Amount())
		dynReg.Currency = reg.Amount.Currency().Code
	}
	return dynReg
}

func dynamoToRegistration(dynReg registrationDynamo) registration.Registration {
	reg := registration.Registration{
		ID: dynReg.ID,
		Attendee: registration.Attendee{
			Name:       dynReg.Name,
			Email:      dynReg.Email,
			Mobile:     dynReg.Mobile,
			Company:    dynReg.Company,
			Department: dynReg.Department,
		},
		PaymentID:     dynReg.PaymentID,
		OrderID:       dynReg.OrderID,
		PaymentStatus: dynReg.PaymentStatus,
		CreatedAt:     dynReg.CreatedAt,
		UpdatedAt:     dynReg.UpdatedAt,
	}
	if dynReg.Amount != nil {
		reg.Amount = money.New(*dynReg.Amount, dynReg.Currency)
	}
	return reg
}

// stamp assigns identity and timestamps and lowercases the email.
func (d *DB) stamp(reg registration.Registration) registration.Registration {
	now := d.now().UTC()
	reg.ID = uuid.New()
	reg.Email = registration.NormalizeEmail(reg.Email)
	reg.CreatedAt = now
	reg.UpdatedAt = now
	return reg
}

func (d *DB) registrationPut(dynReg registrationDynamo) (*types.Put, error) {
	item, err := attributevalue.MarshalMap(dynReg)
	if err != nil {
		return nil, registration.NewFailedToTranslateToDBModelError("Failed to translate registration to dynamo model", err)
	}
	expr := exprMustBuild(expression.NewBuilder().WithCondition(newEntityConditional()))

	return &types.Put{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}

func (d *DB) CreateRegistration(ctx context.Context, reg registration.Registration) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	reg = d.stamp(reg)
	regPut, err := d.registrationPut(registrationToDynamo(reg))
	if err != nil {
		return registration.Registration{}, err
	}

	window := emailWindowDynamo{
		PK:              emailWindowPK(reg.Email),
		SK:              emailWindowSK,
		RegistrationID:  reg.ID,
		WindowExpiresAt: reg.CreatedAt.Add(registration.DedupWindow).UnixMilli(),
	}
	windowItem, err := attributevalue.MarshalMap(window)
	if err != nil {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError("Failed to translate email window to dynamo model", err)
	}
	// An expired window is overwritten in place.
	windowExpr := exprMustBuild(expression.NewBuilder().WithCondition(
		newEntityConditional().
			Or(expression.Name("WindowExpiresAt").LessThanEqual(expression.Value(reg.CreatedAt.UnixMilli()))),
	))

	client, err := d.client()
	if err != nil {
		return registration.Registration{}, registration.NewFailedToWriteError("Registration store is closed", err)
	}

	_, err = client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: regPut},
			{
				Put: &types.Put{
					TableName:                 aws.String(d.tableName),
					Item:                      windowItem,
					ConditionExpression:       windowExpr.Condition(),
					ExpressionAttributeNames:  windowExpr.Names(),
					ExpressionAttributeValues: windowExpr.Values(),
				},
			},
		},
	})
	if err != nil {
		var transactionFailedErr *types.TransactionCanceledException
		if errors.As(err, &transactionFailedErr) {
			if lostToExistingItem(transactionFailedErr, 1) {
				return registration.Registration{}, registration.NewRegistrationAlreadyExistsError(fmt.Sprintf("Registration for %q already exists within the dedup window", reg.Email), err)
			}
			return registration.Registration{}, registration.NewFailedToWriteError("Registration transaction was cancelled", err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("CreateRegistration timed out")
		} else {
			return registration.Registration{}, registration.NewFailedToWriteError("Failed TransactWriteItems call", err)
		}
	}

	return reg, nil
}

func (d *DB) CreateConfirmedRegistration(ctx context.Context, reg registration.Registration) (registration.Registration, error) {
	if reg.PaymentID == nil || *reg.PaymentID == "" {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError("Confirmed registration has no payment ID", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	reg = d.stamp(reg)
	regPut, err := d.registrationPut(registrationToDynamo(reg))
	if err != nil {
		return registration.Registration{}, err
	}

	marker := paymentMarkerDynamo{
		PK:             paymentMarkerPK(*reg.PaymentID),
		SK:             paymentEntityName,
		RegistrationID: reg.ID,
	}
	markerItem, err := attributevalue.MarshalMap(marker)
	if err != nil {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError("Failed to translate payment marker to dynamo model", err)
	}
	markerExpr := exprMustBuild(expression.NewBuilder().WithCondition(newEntityConditional()))

	client, err := d.client()
	if err != nil {
		return registration.Registration{}, registration.NewFailedToWriteError("Registration store is closed", err)
	}

	_, err = client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: regPut},
			{
				Put: &types.Put{
					TableName:                 aws.String(d.tableName),
					Item:                      markerItem,
					ConditionExpression:       markerExpr.Condition(),
					ExpressionAttributeNames:  markerExpr.Names(),
					ExpressionAttributeValues: markerExpr.Values(),
				},
			},
		},
	})
	if err != nil {
		var transactionFailedErr *types.TransactionCanceledException
		if errors.As(err, &transactionFailedErr) {
			if lostToExistingItem(transactionFailedErr, 1) {
				return registration.Registration{}, registration.NewPaymentAlreadyRecordedError(fmt.Sprintf("Payment %q is already recorded", *reg.PaymentID), err)
			}
			return registration.Registration{}, registration.NewFailedToWriteError("Confirmed registration transaction was cancelled", err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("CreateConfirmedRegistration timed out")
		} else {
			return registration.Registration{}, registration.NewFailedToWriteError("Failed TransactWriteItems call", err)
		}
	}

	return reg, nil
}

// lostToExistingItem reports whether the item at index was already written,
// or is being written by a concurrent transaction for the same key.
func lostToExistingItem(err *types.TransactionCanceledException, index int) bool {
	if index >= len(err.CancellationReasons) {
		return false
	}
	switch aws.ToString(err.CancellationReasons[index].Code) {
	case conditionalCheckFailed, transactionConflict:
		return true
	default:
		return false
	}
}

func (d *DB) GetRegistration(ctx context.Context, id uuid.UUID) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := d.client()
	if err != nil {
		return registration.Registration{}, registration.NewFailedToFetchError("Registration store is closed", err)
	}

	resp, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: registrationKey(id)},
			"SK": &types.AttributeValueMemberS{Value: registrationKey(id)},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("GetRegistration timed out")
		}
		return registration.Registration{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration with id %q", id), err)
	}

	if len(resp.Item) == 0 {
		return registration.Registration{}, registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with id %q not found", id), nil)
	}

	var dynReg registrationDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &dynReg)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal registration from dynamo: %s", err))
	}

	return dynamoToRegistration(dynReg), nil
}

// ListRegistrations pages through every registration, newest first.
func (d *DB) ListRegistrations(ctx context.Context, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	keyCond := expression.Key("GSI1PK").Equal(expression.Value(registrationEntityName))
	expr := exprMustBuild(expression.NewBuilder().WithKeyCondition(keyCond))

	var startKey map[string]types.AttributeValue
	if cursor != nil {
		var err error
		startKey, err = cursorToLastEval(*cursor)
		if err != nil {
			return registration.ListRegistrationsResponse{}, registration.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	client, err := d.client()
	if err != nil {
		return registration.ListRegistrationsResponse{}, registration.NewFailedToFetchError("Registration store is closed", err)
	}

	result, err := client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(d.tableName),
		IndexName:                 aws.String(gsi1),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
		// Fetch 1 more than limit to check if there is another page or not
		Limit:             aws.Int32(limit + 1),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.ListRegistrationsResponse{}, registration.NewTimeoutError("ListRegistrations timed out")
		}
		return registration.ListRegistrationsResponse{}, registration.NewFailedToFetchError("Failed to fetch registrations from dynamo", err)
	}

	var dynamoItems []registrationDynamo
	err = attributevalue.UnmarshalListOfMaps(result.Items, &dynamoItems)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal dynamo registrations: %s", err))
	}

	hasNextPage := len(dynamoItems) > int(limit)

	var newCursor *string
	if hasNextPage && len(result.LastEvaluatedKey) > 0 {
		// Can't use LastEvalKey directly because we grabbed an extra item to check for next page
		lastItemGivenToUser := result.Items[len(result.Items)-2]
		lastItemKey := getKeyFromItem(result.LastEvaluatedKey, lastItemGivenToUser)
		c, err := lastEvalKeyToCursor(lastItemKey)
		if err != nil {
			panic(fmt.Sprintf("failed to make cursor from lastEvalKey: %s", err))
		}
		newCursor = &c
	}

	data := make([]registration.Registration, 0, min(int(limit), len(dynamoItems)))
	for _, v := range dynamoItems[:min(int(limit), len(dynamoItems))] {
		data = append(data, dynamoToRegistration(v))
	}

	return registration.ListRegistrationsResponse{
		Data:        data,
		Cursor:      newCursor,
		HasNextPage: hasNextPage,
	}, nil
}
