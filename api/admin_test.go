package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-defect-summit/event-registration/ptr"
	"github.com/zero-defect-summit/event-registration/registration"
)

var adminHeaders = map[string]string{adminKeyHeader: testAdminKey}

func TestGetRegistrations(t *testing.T) {
	createdAt := time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC)
	paid := registration.Registration{
		ID: uuid.New(),
		Attendee: registration.Attendee{
			Name:    "Jane Doe",
			Email:   "jane@x.com",
			Mobile:  "9876543210",
			Company: "Acme",
		},
		PaymentID:     ptr.String("pay_1"),
		PaymentStatus: registration.PAYMENT_STATUS_COMPLETED,
		Amount:        money.New(4130000, "INR"),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	t.Run("lists a page", func(t *testing.T) {
		deps := newTestDeps()
		var gotLimit int32
		var gotCursor *string
		deps.db.ListRegistrationsFunc = func(ctx context.Context, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
			gotLimit = limit
			gotCursor = cursor
			return registration.ListRegistrationsResponse{
				Data:        []registration.Registration{paid},
				Cursor:      ptr.String("next"),
				HasNextPage: true,
			}, nil
		}

		w := serve(t, deps.api(), http.MethodGet, "/registrations?limit=1&cursor=abc", "", adminHeaders)
		require.Equal(t, http.StatusOK, w.Code)

		var resp ListRegistrationsResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, paid.ID, resp.Data[0].Id)
		assert.Equal(t, Completed, resp.Data[0].PaymentStatus)
		require.NotNil(t, resp.Data[0].Amount)
		assert.Equal(t, float64(41300), *resp.Data[0].Amount)
		assert.Equal(t, "INR", *resp.Data[0].Currency)
		assert.True(t, resp.HasNextPage)
		assert.Equal(t, ptr.String("next"), resp.Cursor)

		assert.Equal(t, int32(1), gotLimit)
		assert.Equal(t, ptr.String("abc"), gotCursor)
	})

	t.Run("default limit", func(t *testing.T) {
		deps := newTestDeps()
		var gotLimit int32
		deps.db.ListRegistrationsFunc = func(ctx context.Context, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
			gotLimit = limit
			return registration.ListRegistrationsResponse{}, nil
		}

		w := serve(t, deps.api(), http.MethodGet, "/registrations", "", adminHeaders)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int32(defaultListLimit), gotLimit)

		var resp ListRegistrationsResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
	})

	t.Run("limit out of bounds", func(t *testing.T) {
		for _, limit := range []string{"0", "51", "-3"} {
			deps := newTestDeps()

			w := serve(t, deps.api(), http.MethodGet, "/registrations?limit="+limit, "", adminHeaders)
			require.Equal(t, http.StatusBadRequest, w.Code, "limit %s", limit)
			assert.Equal(t, LimitOutOfBounds, decodeError(t, w).Code)
			assert.Equal(t, 0, deps.db.Calls())
		}
	})

	t.Run("invalid cursor", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.ListRegistrationsFunc = func(ctx context.Context, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
			return registration.ListRegistrationsResponse{}, registration.NewInvalidCursorError("Invalid cursor", errors.New("bad b64"))
		}

		w := serve(t, deps.api(), http.MethodGet, "/registrations?cursor=zzz", "", adminHeaders)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, InvalidCursor, decodeError(t, w).Code)
	})

	t.Run("wrong admin key", func(t *testing.T) {
		deps := newTestDeps()

		w := serve(t, deps.api(), http.MethodGet, "/registrations", "", map[string]string{adminKeyHeader: "guess"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, AuthError, decodeError(t, w).Code)
		assert.Equal(t, 0, deps.db.Calls())
	})

	t.Run("missing admin key", func(t *testing.T) {
		deps := newTestDeps()

		w := serve(t, deps.api(), http.MethodGet, "/registrations", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin key not configured", func(t *testing.T) {
		deps := newTestDeps()
		deps.settings.AdminAPIKey = ""

		w := serve(t, deps.api(), http.MethodGet, "/registrations", "", map[string]string{adminKeyHeader: ""})
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, ConfigurationError, decodeError(t, w).Code)
	})
}

func TestGetRegistrationsParams(t *testing.T) {
	t.Run("limit and cursor come from the bound params", func(t *testing.T) {
		deps := newTestDeps()
		var gotLimit int32
		var gotCursor *string
		deps.db.ListRegistrationsFunc = func(ctx context.Context, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
			gotLimit = limit
			gotCursor = cursor
			return registration.ListRegistrationsResponse{}, nil
		}
		limit := 25
		req := GetRegistrationsRequestObject{
			Params: GetRegistrationsParams{
				Limit:     &limit,
				Cursor:    ptr.String("abc"),
				XAdminKey: ptr.String(testAdminKey),
			},
		}

		resp, err := deps.api().GetRegistrations(ctxWithLogger(context.Background(), noopLogger), req)
		require.NoError(t, err)

		switch r := resp.(type) {
		case GetRegistrations200JSONResponse:
			assert.Empty(t, r.Data)
			assert.False(t, r.HasNextPage)
		default:
			t.Fatalf("unexpected response type: %T", resp)
		}
		assert.Equal(t, int32(25), gotLimit)
		assert.Equal(t, ptr.String("abc"), gotCursor)
	})

	t.Run("limit above the maximum", func(t *testing.T) {
		deps := newTestDeps()
		limit := maxListLimit + 1
		req := GetRegistrationsRequestObject{
			Params: GetRegistrationsParams{Limit: &limit, XAdminKey: ptr.String(testAdminKey)},
		}

		resp, err := deps.api().GetRegistrations(ctxWithLogger(context.Background(), noopLogger), req)
		require.NoError(t, err)

		switch r := resp.(type) {
		case GetRegistrations400JSONResponse:
			assert.Equal(t, LimitOutOfBounds, r.Code)
		default:
			t.Fatalf("unexpected response type: %T", resp)
		}
		assert.Equal(t, 0, deps.db.Calls())
	})

	t.Run("missing admin key", func(t *testing.T) {
		deps := newTestDeps()

		resp, err := deps.api().GetRegistrations(ctxWithLogger(context.Background(), noopLogger), GetRegistrationsRequestObject{})
		require.NoError(t, err)

		switch r := resp.(type) {
		case GetRegistrations401JSONResponse:
			assert.Equal(t, AuthError, r.Code)
		default:
			t.Fatalf("unexpected response type: %T", resp)
		}
	})

	t.Run("non-integer limit is rejected by the schema", func(t *testing.T) {
		deps := newTestDeps()

		w := serve(t, deps.api(), http.MethodGet, "/registrations?limit=ten", "", adminHeaders)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, InputValidationError, decodeError(t, w).Code)
		assert.Equal(t, 0, deps.db.Calls())
	})
}
