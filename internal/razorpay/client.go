package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const orderCurrency = "INR"

// OrderRequest describes the order to reserve with the gateway. Amount
// is in major currency units; the client converts to paise on the wire.
type OrderRequest struct {
	Amount         int64
	Receipt        string
	IdempotencyKey string
	Notes          map[string]string
}

// Order is the gateway's response to an order create.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type cachedOrder struct {
	order     *Order
	expiresAt time.Time
}

// Client talks to the Razorpay orders API over REST with Basic auth.
// Successful orders are remembered per idempotency key for a short
// window so that client retries do not mint duplicate gateway orders.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client

	cacheTTL time.Duration
	mu       sync.Mutex
	cache    map[string]cachedOrder
}

func NewClient(keyID, keySecret, baseURL string, timeout, cacheTTL time.Duration) *Client {
	return &Client{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cacheTTL:   cacheTTL,
		cache:      make(map[string]cachedOrder),
	}
}

func (c *Client) Configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder reserves an amount with the gateway and returns the order.
// The amount in req is in major units and is converted to paise here,
// per the Razorpay orders API contract.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if req.IdempotencyKey != "" {
		if order := c.cachedFor(req.IdempotencyKey); order != nil {
			logrus.WithField("order_id", order.ID).Info("reusing cached gateway order for idempotency key")
			return order, nil
		}
	}

	receipt := req.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("booking_%d", time.Now().UnixMilli())
	}

	payload := map[string]interface{}{
		"amount":   req.Amount * 100,
		"currency": orderCurrency,
		"receipt":  receipt,
		"notes":    req.Notes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error calling gateway: %w", err)
	}
	defer res.Body.Close()

	resBody, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway order create failed: %s (%d)", string(resBody), res.StatusCode)
	}

	var order Order
	if err := json.Unmarshal(resBody, &order); err != nil {
		return nil, fmt.Errorf("error parsing gateway order: %w", err)
	}

	if req.IdempotencyKey != "" {
		c.remember(req.IdempotencyKey, &order)
	}

	return &order, nil
}

func (c *Client) cachedFor(key string) *Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.cache, key)
		return nil
	}
	return entry.order
}

func (c *Client) remember(key string, order *Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cachedOrder{order: order, expiresAt: time.Now().Add(c.cacheTTL)}
}
