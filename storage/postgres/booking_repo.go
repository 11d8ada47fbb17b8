package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ridebook/pkg/logger"
	"ridebook/pkg/models"
	"ridebook/storage"
)

type bookingRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewBookingRepo(db *pgxpool.Pool, log logger.ILogger) storage.IBookingStorage {
	return &bookingRepo{db: db, log: log}
}

func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (booking_key, customer_name, customer_phone, destination, payment_status, booking_status)
		VALUES ($1, $2, $3, $4, 'unpaid', 'pending')
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		booking.BookingKey,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.Destination,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		r.log.Error("failed to create booking", logger.Error(err))
		return nil, err
	}

	booking.PaymentStatus = models.PaymentStatusUnpaid
	booking.BookingStatus = models.BookingStatusPending

	return booking, nil
}

func (r *bookingRepo) Get(ctx context.Context, bookingKey string) (*models.Booking, error) {
	var booking models.Booking
	query := `
		SELECT booking_key, customer_name, customer_phone, destination, payment_status, booking_status,
		       assigned_driver, gateway_order_id, gateway_payment_id, created_at, updated_at
		FROM bookings
		WHERE booking_key = $1
	`
	err := r.db.QueryRow(ctx, query, bookingKey).Scan(
		&booking.BookingKey,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.Destination,
		&booking.PaymentStatus,
		&booking.BookingStatus,
		&booking.AssignedDriver,
		&booking.GatewayOrderID,
		&booking.GatewayPaymentID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to get booking", logger.String("booking_key", bookingKey), logger.Error(err))
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepo) Confirm(ctx context.Context, bookingKey, driver, gatewayOrderID, gatewayPaymentID string) error {
	query := `
		UPDATE bookings
		SET payment_status = 'paid',
		    booking_status = 'confirmed',
		    assigned_driver = $1,
		    gateway_order_id = $2,
		    gateway_payment_id = $3,
		    updated_at = now()
		WHERE booking_key = $4 AND booking_status <> 'confirmed'
	`
	res, err := r.db.Exec(ctx, query, driver, gatewayOrderID, gatewayPaymentID, bookingKey)
	if err != nil {
		r.log.Error("failed to confirm booking", logger.String("booking_key", bookingKey), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		// Either the key is unknown or a concurrent verification got there
		// first. Re-read to tell the two apart.
		booking, getErr := r.Get(ctx, bookingKey)
		if getErr != nil {
			return getErr
		}
		if booking.BookingStatus == models.BookingStatusConfirmed {
			return storage.ErrAlreadyConfirmed
		}
		return storage.ErrNotFound
	}
	return nil
}
