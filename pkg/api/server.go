package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridebook/pkg/logger"
	"ridebook/pkg/models"
	"ridebook/service"
	"ridebook/storage"
)

type Server struct {
	svc service.IServiceManager
	stg storage.IStorage
	log logger.ILogger
}

func NewRouter(svc service.IServiceManager, stg storage.IStorage, log logger.ILogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	s := &Server{svc: svc, stg: stg, log: log}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ridebook backend is running")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/create-order", s.createOrder)
	r.POST("/verify-payment", s.verifyPayment)
	r.POST("/bookings", s.createBooking)
	r.GET("/bookings/:key", s.getBooking)

	return r
}

func RunServer(svc service.IServiceManager, stg storage.IStorage, log logger.ILogger, port int) error {
	return NewRouter(svc, stg, log).Run(fmt.Sprintf(":%d", port))
}

type createOrderRequest struct {
	Destination string `json:"destination"`
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := s.svc.Order().CreateOrder(c.Request.Context(), req.Destination)
	if err != nil {
		s.log.Error("create-order failed", logger.Error(err))
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrGateway) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": "create-order failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": order.OrderID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})
}

func (s *Server) verifyPayment(c *gin.Context) {
	var cb models.PaymentCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.svc.Fulfillment().Fulfill(c.Request.Context(), cb)
	if err != nil {
		s.log.Error("verify-payment failed", logger.String("payment_id", cb.PaymentID), logger.Error(err))
		if errors.Is(err, storage.ErrAlreadyConfirmed) {
			c.JSON(http.StatusConflict, gin.H{"status": models.FulfillmentFailure, "error": "booking already confirmed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verify-payment failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type createBookingRequest struct {
	BookingKey    string `json:"booking_key"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Destination   string `json:"destination"`
}

// Bookings start life pending/unpaid; fulfillment later flips them on a
// verified payment.
func (s *Server) createBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BookingKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	booking, err := s.stg.Booking().Create(c.Request.Context(), &models.Booking{
		BookingKey:    req.BookingKey,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Destination:   req.Destination,
	})
	if err != nil {
		s.log.Error("failed to create booking", logger.String("booking_key", req.BookingKey), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create-booking failed"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (s *Server) getBooking(c *gin.Context) {
	booking, err := s.stg.Booking().Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		s.log.Error("failed to get booking", logger.String("booking_key", c.Param("key")), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get-booking failed"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
