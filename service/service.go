package service

type IServiceManager interface {
	Order() OrderService
	Fulfillment() FulfillmentService
}

type service struct {
	orderService       OrderService
	fulfillmentService FulfillmentService
}

func New(orderService OrderService, fulfillmentService FulfillmentService) IServiceManager {
	return &service{
		orderService:       orderService,
		fulfillmentService: fulfillmentService,
	}
}

func (s *service) Order() OrderService {
	return s.orderService
}

func (s *service) Fulfillment() FulfillmentService {
	return s.fulfillmentService
}
