package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ridebook/pkg/logger"
	"ridebook/pkg/models"
	"ridebook/storage"
)

type FulfillmentService interface {
	Fulfill(ctx context.Context, cb models.PaymentCallback) (*models.FulfillmentResult, error)
}

// SignatureVerifier authenticates a payment callback against the gateway
// secret. A false return is a normal negative outcome.
type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

type DriverAssigner interface {
	Assign() string
}

type Notifier interface {
	Send(ctx context.Context, phone, name, driverName, paymentID string) error
}

// Alerter pushes an out-of-band note to the operator channel. Optional.
type Alerter interface {
	Alert(text string) error
}

type ReceiptRenderer interface {
	Render(f models.ReceiptFields) ([]byte, error)
}

type fulfillmentService struct {
	verifier SignatureVerifier
	assigner DriverAssigner
	stg      storage.IStorage
	notifier Notifier
	alerter  Alerter
	renderer ReceiptRenderer
	log      logger.ILogger
	now      func() time.Time
}

func NewFulfillmentService(
	verifier SignatureVerifier,
	assigner DriverAssigner,
	stg storage.IStorage,
	notifier Notifier,
	alerter Alerter,
	renderer ReceiptRenderer,
	log logger.ILogger,
) FulfillmentService {
	return &fulfillmentService{
		verifier: verifier,
		assigner: assigner,
		stg:      stg,
		notifier: notifier,
		alerter:  alerter,
		renderer: renderer,
		log:      log,
		now:      time.Now,
	}
}

// Fulfill runs the ordered pipeline for a verified payment: assign driver,
// confirm the booking, notify the customer, issue the receipt. The signature
// check is the only short-circuit: a rejected callback produces zero side
// effects. Delivery failures are absorbed; persistence and render failures
// abort with their error kind.
func (s *fulfillmentService) Fulfill(ctx context.Context, cb models.PaymentCallback) (*models.FulfillmentResult, error) {
	if !s.verifier.Verify(cb.OrderID, cb.PaymentID, cb.Signature) {
		s.log.Warning("payment signature rejected",
			logger.String("order_id", cb.OrderID),
			logger.String("payment_id", cb.PaymentID),
		)
		return &models.FulfillmentResult{Status: models.FulfillmentFailure}, nil
	}

	assigned := s.assigner.Assign()

	if cb.BookingKey != "" {
		err := s.stg.Booking().Confirm(ctx, cb.BookingKey, assigned, cb.OrderID, cb.PaymentID)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyConfirmed) {
				return nil, err
			}
			return nil, errors.Join(ErrPersistence, err)
		}
		s.log.Info("booking confirmed",
			logger.String("booking_key", cb.BookingKey),
			logger.String("driver", assigned),
		)
	}

	if cb.Phone != "" {
		if err := s.notifier.Send(ctx, cb.Phone, cb.Name, assigned, cb.PaymentID); err != nil {
			// A failed confirmation message never rolls back the booking.
			s.log.Error("confirmation delivery failed",
				logger.String("payment_id", cb.PaymentID),
				logger.Error(errors.Join(ErrDelivery, err)),
			)
		}
	}

	if s.alerter != nil {
		_ = s.alerter.Alert(fmt.Sprintf("Booking confirmed ✅\nDriver: %s\nPayment ID: %s", assigned, cb.PaymentID))
	}

	doc, err := s.renderer.Render(models.ReceiptFields{
		CustomerName: cb.Name,
		Phone:        cb.Phone,
		PaymentID:    cb.PaymentID,
		OrderID:      cb.OrderID,
		Driver:       assigned,
		Timestamp:    s.now(),
	})
	if err != nil {
		return nil, errors.Join(ErrRender, err)
	}

	if err := s.stg.Receipt().Save(ctx, &models.Receipt{
		PaymentID:  cb.PaymentID,
		BookingKey: cb.BookingKey,
		Document:   doc,
	}); err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	return &models.FulfillmentResult{
		Status:    models.FulfillmentSuccess,
		Driver:    assigned,
		PaymentID: cb.PaymentID,
	}, nil
}
