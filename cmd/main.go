package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ridebook/config"
	"ridebook/pkg/api"
	"ridebook/pkg/driver"
	"ridebook/pkg/gateway"
	"ridebook/pkg/logger"
	"ridebook/pkg/notify"
	"ridebook/pkg/receipt"
	"ridebook/service"
	"ridebook/storage/postgres"
)

func main() {
	// 1. Load config and fail fast on configuration faults
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", logger.Error(err))
		os.Exit(1)
	}

	// 2. Shared storage (Postgres)
	pgStore, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	// 3. Outbound collaborators
	gatewayClient := gateway.New(cfg.GatewayBaseURL, cfg.GatewayKeyID, cfg.GatewayKeySecret, log)
	whatsapp := notify.NewWhatsApp(cfg.WhatsAppBaseURL, cfg.WhatsAppPhoneNumberID, cfg.WhatsAppToken, log)
	renderer := receipt.NewRenderer()

	assigner, err := driver.NewAssigner(cfg.DriverRoster, nil)
	if err != nil {
		log.Error("failed to build driver assigner", logger.Error(err))
		os.Exit(1)
	}

	var alerter service.Alerter
	if cfg.OperatorBotToken != "" {
		operatorBot, err := notify.NewOperatorBot(cfg.OperatorBotToken, cfg.OperatorChatID, log)
		if err != nil {
			log.Error("failed to initialize operator bot", logger.Error(err))
			os.Exit(1)
		}
		alerter = operatorBot
	}

	// 4. Services
	svc := service.New(
		service.NewOrderService(gatewayClient, cfg.Currency, cfg.ReceiptPrefix, log),
		service.NewFulfillmentService(gatewayClient, assigner, pgStore, whatsapp, alerter, renderer, log),
	)

	// 5. HTTP server
	go func() {
		log.Info("HTTP server is starting...", logger.Int("port", cfg.AppPort))
		if err := api.RunServer(svc, pgStore, log, cfg.AppPort); err != nil {
			log.Error("HTTP server stopped", logger.Error(err))
			os.Exit(1)
		}
	}()

	// 6. Graceful shutdown listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down...")
}
