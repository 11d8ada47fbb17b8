package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"ridebook/pkg/logger"
)

// WhatsApp sends the customer confirmation text through the WhatsApp Cloud
// API. Requests are bounded to 5s with a single retry; a final failure is
// reported to the caller, which absorbs it.
type WhatsApp struct {
	resty         *resty.Client
	phoneNumberID string
	log           logger.ILogger
}

func NewWhatsApp(baseURL, phoneNumberID, token string, log logger.ILogger) *WhatsApp {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetRetryCount(1).
		SetAuthToken(token)

	return &WhatsApp{
		resty:         rc,
		phoneNumberID: phoneNumberID,
		log:           log,
	}
}

type textMessage struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             messageBody `json:"text"`
}

type messageBody struct {
	Body string `json:"body"`
}

func (w *WhatsApp) Send(ctx context.Context, phone, name, driverName, paymentID string) error {
	body := fmt.Sprintf("Hi %s, your Ridebook booking is CONFIRMED ✅\nDriver: %s\nPayment ID: %s",
		name, driverName, paymentID)

	resp, err := w.resty.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(textMessage{
			MessagingProduct: "whatsapp",
			To:               phone,
			Type:             "text",
			Text:             messageBody{Body: body},
		}).
		Post(fmt.Sprintf("/%s/messages", w.phoneNumberID))
	if err != nil {
		return fmt.Errorf("failed to call messaging service: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("messaging service returned an error: %s", resp.Status())
	}

	w.log.Info("confirmation message sent", logger.String("payment_id", paymentID))
	return nil
}
