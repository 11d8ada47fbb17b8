package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"ridebook/pkg/logger"
	"ridebook/pkg/models"
)

// Client talks to the remote payment gateway. Orders live in the gateway
// until a callback references them; nothing is stored locally.
type Client struct {
	resty     *resty.Client
	keyID     string
	keySecret string
	log       logger.ILogger
}

func New(baseURL, keyID, keySecret string, log logger.ILogger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetBasicAuth(keyID, keySecret)

	return &Client{
		resty:     rc,
		keyID:     keyID,
		keySecret: keySecret,
		log:       log,
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receiptLabel string) (*models.PaymentOrder, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(orderRequest{Amount: amount, Currency: currency, Receipt: receiptLabel}).
		Post("/v1/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to call payment gateway: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("payment gateway returned an error: %s", resp.Status())
	}

	var order orderResponse
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("failed to decode payment gateway response: %w", err)
	}

	c.log.Info("gateway order created",
		logger.String("order_id", order.ID),
		logger.Int64("amount", order.Amount),
	)

	return &models.PaymentOrder{
		OrderID:      order.ID,
		Amount:       order.Amount,
		Currency:     order.Currency,
		ReceiptLabel: order.Receipt,
	}, nil
}

// Verify authenticates a payment callback against the shared gateway secret.
func (c *Client) Verify(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, c.keySecret)
}
