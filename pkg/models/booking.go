package models

import "time"

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"

	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

type Booking struct {
	BookingKey       string    `json:"booking_key"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	Destination      string    `json:"destination"`
	PaymentStatus    string    `json:"payment_status"`
	BookingStatus    string    `json:"booking_status"`
	AssignedDriver   *string   `json:"assigned_driver"`
	GatewayOrderID   *string   `json:"gateway_order_id"`
	GatewayPaymentID *string   `json:"gateway_payment_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
