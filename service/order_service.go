package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ridebook/pkg/logger"
	"ridebook/pkg/models"
	"ridebook/pkg/pricing"
)

type OrderService interface {
	CreateOrder(ctx context.Context, destination string) (*models.PaymentOrder, error)
}

// GatewayClient is the remote order-creation side of the payment gateway.
type GatewayClient interface {
	CreateOrder(ctx context.Context, amount int64, currency, receiptLabel string) (*models.PaymentOrder, error)
}

type orderService struct {
	gateway       GatewayClient
	currency      string
	receiptPrefix string
	log           logger.ILogger
	now           func() time.Time
}

func NewOrderService(gateway GatewayClient, currency, receiptPrefix string, log logger.ILogger) OrderService {
	return &orderService{
		gateway:       gateway,
		currency:      currency,
		receiptPrefix: receiptPrefix,
		log:           log,
		now:           time.Now,
	}
}

// CreateOrder resolves the fare for the destination and opens a gateway
// order for it. No local state is written; the order lives in the gateway
// until a callback references it.
func (s *orderService) CreateOrder(ctx context.Context, destination string) (*models.PaymentOrder, error) {
	amount := pricing.Resolve(destination)
	label := fmt.Sprintf("%s_%d", s.receiptPrefix, s.now().UnixMilli())

	order, err := s.gateway.CreateOrder(ctx, amount, s.currency, label)
	if err != nil {
		s.log.Error("order creation failed",
			logger.String("destination", destination),
			logger.Int64("amount", amount),
			logger.Error(err),
		)
		return nil, errors.Join(ErrGateway, err)
	}

	return order, nil
}
