package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"ridebook/pkg/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyConfirmed = errors.New("booking already confirmed")
)

type IStorage interface {
	Booking() IBookingStorage
	Receipt() IReceiptStorage
	Close()
	GetPool() *pgxpool.Pool
}

type IBookingStorage interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	Get(ctx context.Context, bookingKey string) (*models.Booking, error)
	// Confirm atomically marks the booking paid and confirmed and records the
	// driver and gateway identifiers. It refuses to touch an already
	// confirmed booking (ErrAlreadyConfirmed) and reports ErrNotFound for an
	// unknown key.
	Confirm(ctx context.Context, bookingKey, driver, gatewayOrderID, gatewayPaymentID string) error
}

type IReceiptStorage interface {
	// Save upserts by payment id so a repeated verification overwrites the
	// prior document instead of duplicating it.
	Save(ctx context.Context, receipt *models.Receipt) error
	Get(ctx context.Context, paymentID string) (*models.Receipt, error)
}
