package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://api.razorpay.com"

	requestTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20
)

// Client talks to the Razorpay orders API.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(keyID, keySecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   requestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// KeyID is the public key the browser checkout widget needs. It is safe to
// hand out, the secret is not.
func (c *Client) KeyID() string {
	return c.keyID
}

type OrderParams struct {
	Amount  *money.Money
	Receipt string
	Notes   Notes
}

type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
	KeyID    string
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
	Notes    Notes  `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func (c *Client) CreateOrder(ctx context.Context, params OrderParams) (Order, error) {
	if c.keyID == "" || c.keySecret == "" {
		return Order{}, NewNotConfiguredError("Razorpay key id or key secret is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqBody, err := json.Marshal(createOrderRequest{
		Amount:   params.Amount.Amount(),
		Currency: params.Amount.Currency().Code,
		Receipt:  params.Receipt,
		Notes:    params.Notes,
	})
	if err != nil {
		return Order{}, NewRequestFailedError("Failed to encode order request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(reqBody))
	if err != nil {
		return Order{}, NewRequestFailedError("Failed to build order request", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Order{}, NewRequestFailedError("Order request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Order{}, NewRequestFailedError("Failed to read order response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Order{}, NewUnexpectedStatusError(resp.StatusCode, string(respBody))
	}

	var order orderResponse
	err = json.Unmarshal(respBody, &order)
	if err != nil {
		return Order{}, NewRequestFailedError("Failed to decode order response", err)
	}
	if order.ID == "" {
		return Order{}, NewRequestFailedError(fmt.Sprintf("Order response has no id: %s", respBody), nil)
	}

	return Order{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   order.Status,
		KeyID:    c.keyID,
	}, nil
}
