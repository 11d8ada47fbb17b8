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

type receiptRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewReceiptRepo(db *pgxpool.Pool, log logger.ILogger) storage.IReceiptStorage {
	return &receiptRepo{db: db, log: log}
}

func (r *receiptRepo) Save(ctx context.Context, receipt *models.Receipt) error {
	query := `
		INSERT INTO receipts (payment_id, booking_key, document)
		VALUES ($1, $2, $3)
		ON CONFLICT (payment_id)
		DO UPDATE SET booking_key = EXCLUDED.booking_key, document = EXCLUDED.document
	`
	_, err := r.db.Exec(ctx, query, receipt.PaymentID, receipt.BookingKey, receipt.Document)
	if err != nil {
		r.log.Error("failed to save receipt", logger.String("payment_id", receipt.PaymentID), logger.Error(err))
		return err
	}
	return nil
}

func (r *receiptRepo) Get(ctx context.Context, paymentID string) (*models.Receipt, error) {
	var receipt models.Receipt
	query := `
		SELECT payment_id, booking_key, document, created_at
		FROM receipts
		WHERE payment_id = $1
	`
	err := r.db.QueryRow(ctx, query, paymentID).Scan(
		&receipt.PaymentID,
		&receipt.BookingKey,
		&receipt.Document,
		&receipt.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to get receipt", logger.String("payment_id", paymentID), logger.Error(err))
		return nil, err
	}

	return &receipt, nil
}
