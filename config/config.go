package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	AppPort int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	GatewayBaseURL   string
	GatewayKeyID     string
	GatewayKeySecret string

	Currency      string
	ReceiptPrefix string

	WhatsAppBaseURL       string
	WhatsAppPhoneNumberID string
	WhatsAppToken         string

	OperatorBotToken string
	OperatorChatID   int64

	DriverRoster []string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "ridebook"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))
	cfg.AppPort = cast.ToInt(getOrReturnDefault("APP_PORT", 8080))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "ridebook"))

	cfg.GatewayBaseURL = cast.ToString(getOrReturnDefault("GATEWAY_BASE_URL", "https://api.razorpay.com"))
	cfg.GatewayKeyID = cast.ToString(getOrReturnDefault("GATEWAY_KEY_ID", ""))
	cfg.GatewayKeySecret = cast.ToString(getOrReturnDefault("GATEWAY_KEY_SECRET", ""))

	cfg.Currency = cast.ToString(getOrReturnDefault("CURRENCY", "INR"))
	cfg.ReceiptPrefix = cast.ToString(getOrReturnDefault("RECEIPT_PREFIX", "ridebook"))

	cfg.WhatsAppBaseURL = cast.ToString(getOrReturnDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com/v18.0"))
	cfg.WhatsAppPhoneNumberID = cast.ToString(getOrReturnDefault("WHATSAPP_PHONE_NUMBER_ID", ""))
	cfg.WhatsAppToken = cast.ToString(getOrReturnDefault("WHATSAPP_TOKEN", ""))

	cfg.OperatorBotToken = cast.ToString(getOrReturnDefault("OPERATOR_BOT_TOKEN", ""))
	cfg.OperatorChatID = cast.ToInt64(getOrReturnDefault("OPERATOR_CHAT_ID", 0))

	cfg.DriverRoster = splitRoster(cast.ToString(getOrReturnDefault("DRIVER_ROSTER", "Driver 1,Driver 2,Driver 3")))

	return cfg
}

// Validate reports configuration faults that must stop the process before it
// starts serving requests.
func (c Config) Validate() error {
	if len(c.DriverRoster) == 0 {
		return errors.New("driver roster is empty")
	}
	if c.GatewayKeyID == "" || c.GatewayKeySecret == "" {
		return errors.New("gateway credentials are not set")
	}
	return nil
}

func splitRoster(raw string) []string {
	var roster []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			roster = append(roster, name)
		}
	}
	return roster
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
