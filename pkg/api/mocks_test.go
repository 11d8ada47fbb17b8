package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jackc/pgx/v5/pgxpool"

	"ridebook/pkg/models"
	"ridebook/storage"
)

type BookingStorageMock struct {
	mock.Mock
}

func (m *BookingStorageMock) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *BookingStorageMock) Get(ctx context.Context, bookingKey string) (*models.Booking, error) {
	args := m.Called(ctx, bookingKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *BookingStorageMock) Confirm(ctx context.Context, bookingKey, driver, gatewayOrderID, gatewayPaymentID string) error {
	args := m.Called(ctx, bookingKey, driver, gatewayOrderID, gatewayPaymentID)
	return args.Error(0)
}

type ReceiptStorageMock struct {
	mock.Mock
}

func (m *ReceiptStorageMock) Save(ctx context.Context, receipt *models.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *ReceiptStorageMock) Get(ctx context.Context, paymentID string) (*models.Receipt, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

type StorageMock struct {
	Bookings *BookingStorageMock
	Receipts *ReceiptStorageMock
}

func NewStorageMock() *StorageMock {
	return &StorageMock{
		Bookings: new(BookingStorageMock),
		Receipts: new(ReceiptStorageMock),
	}
}

func (m *StorageMock) Booking() storage.IBookingStorage { return m.Bookings }
func (m *StorageMock) Receipt() storage.IReceiptStorage { return m.Receipts }
func (m *StorageMock) Close()                           {}
func (m *StorageMock) GetPool() *pgxpool.Pool           { return nil }
