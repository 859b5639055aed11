package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	t.Run("sends amount, notes and basic auth", func(t *testing.T) {
		var gotBody createOrderRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "rzp_test_key", user)
			assert.Equal(t, "shh", pass)

			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"order_123","entity":"order","amount":4130000,"currency":"INR","receipt":"rcpt","status":"created","notes":[]}`))
		}))
		defer server.Close()

		client := NewClient("rzp_test_key", "shh", server.URL+"/")

		order, err := client.CreateOrder(context.Background(), OrderParams{
			Amount:  money.New(4130000, "INR"),
			Receipt: "rcpt",
			Notes:   Notes{"name": "Jane Doe", "email": "jane@x.com"},
		})
		require.NoError(t, err)

		assert.Equal(t, Order{
			ID:       "order_123",
			Amount:   4130000,
			Currency: "INR",
			Receipt:  "rcpt",
			Status:   "created",
			KeyID:    "rzp_test_key",
		}, order)
		assert.Equal(t, int64(4130000), gotBody.Amount)
		assert.Equal(t, "INR", gotBody.Currency)
		assert.Equal(t, Notes{"name": "Jane Doe", "email": "jane@x.com"}, gotBody.Notes)
	})

	t.Run("missing credentials fail closed without calling the gateway", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := NewClient("rzp_test_key", "", server.URL)

		_, err := client.CreateOrder(context.Background(), OrderParams{Amount: money.New(100, "INR")})

		var rzpErr *Error
		require.True(t, errors.As(err, &rzpErr))
		assert.Equal(t, REASON_NOT_CONFIGURED, rzpErr.Reason)
		assert.False(t, called)
	})

	t.Run("non success status is an error carrying the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount invalid"}}`))
		}))
		defer server.Close()

		client := NewClient("rzp_test_key", "shh", server.URL)

		_, err := client.CreateOrder(context.Background(), OrderParams{Amount: money.New(100, "INR")})

		var rzpErr *Error
		require.True(t, errors.As(err, &rzpErr))
		assert.Equal(t, REASON_UNEXPECTED_STATUS, rzpErr.Reason)
		assert.Contains(t, rzpErr.Message, "amount invalid")
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewClient("rzp_test_key", "shh", url)

		_, err := client.CreateOrder(context.Background(), OrderParams{Amount: money.New(100, "INR")})

		var rzpErr *Error
		require.True(t, errors.As(err, &rzpErr))
		assert.Equal(t, REASON_REQUEST_FAILED, rzpErr.Reason)
	})

	t.Run("defaults to the public api", func(t *testing.T) {
		client := NewClient("k", "s", "")
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, "k", client.KeyID())
	})
}
