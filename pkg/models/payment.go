package models

// PaymentOrder mirrors the order the gateway creates for a computed fare.
// Amounts are integer minor units (paise).
type PaymentOrder struct {
	OrderID      string `json:"order_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	ReceiptLabel string `json:"receipt_label"`
}

// PaymentCallback is the client-relayed result of a completed gateway checkout.
// Phone, Name and BookingKey are optional.
type PaymentCallback struct {
	OrderID    string `json:"order_id"`
	PaymentID  string `json:"payment_id"`
	Signature  string `json:"signature"`
	Phone      string `json:"phone"`
	Name       string `json:"name"`
	BookingKey string `json:"booking_key"`
}

const (
	FulfillmentSuccess = "success"
	FulfillmentFailure = "failure"
)

type FulfillmentResult struct {
	Status    string `json:"status"`
	Driver    string `json:"driver,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
}
