package models

import "time"

// Receipt is the rendered payment document, keyed by the gateway payment id.
type Receipt struct {
	PaymentID  string    `json:"payment_id"`
	BookingKey string    `json:"booking_key"`
	Document   []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReceiptFields carries everything the renderer prints. Absent optional
// fields render blank.
type ReceiptFields struct {
	CustomerName string
	Phone        string
	PaymentID    string
	OrderID      string
	Driver       string
	Timestamp    time.Time
}
