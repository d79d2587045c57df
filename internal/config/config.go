package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"

	LedgerBackendDynamoDB = "dynamodb"
	LedgerBackendMemory   = "memory"
)

// Config holds all configuration for the payments service.
type Config struct {
	ServerPort int `mapstructure:"SERVER_PORT"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	UsersTable    string `mapstructure:"USERS_TABLE"`
	MissionsTable string `mapstructure:"MISSIONS_TABLE"`
	BookingsTable string `mapstructure:"BOOKINGS_TABLE"`
	PaymentsTable string `mapstructure:"PAYMENTS_TABLE"`
	ChatsTable    string `mapstructure:"CHATS_TABLE"`
	MessagesTable string `mapstructure:"MESSAGES_TABLE"`

	LedgerBackend string `mapstructure:"LEDGER_BACKEND"`

	PaymentProvider          string        `mapstructure:"PAYMENT_PROVIDER"`
	PaymentGatewayMock       bool          `mapstructure:"PAYMENT_GATEWAY_MOCK"`
	StripeSecretKey          string        `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret      string        `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	MercadoPagoAccessToken   string        `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoWebhookSecret string        `mapstructure:"MERCADOPAGO_WEBHOOK_SECRET"`
	MercadoPagoNotifyURL     string        `mapstructure:"MERCADOPAGO_NOTIFICATION_URL"`
	CheckoutSuccessURL       string        `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL        string        `mapstructure:"CHECKOUT_CANCEL_URL"`
	Currency                 string        `mapstructure:"CURRENCY"`
	CheckoutTimeout          time.Duration `mapstructure:"CHECKOUT_TIMEOUT"`

	RedisURL           string        `mapstructure:"REDIS_URL"`
	ProcessedEventsTTL time.Duration `mapstructure:"PROCESSED_EVENTS_TTL"`

	RabbitMQURL      string `mapstructure:"RABBITMQ_URL"`
	RabbitMQExchange string `mapstructure:"RABBITMQ_EXCHANGE"`

	ReconcileSchedule string        `mapstructure:"RECONCILE_SCHEDULE"`
	ReconcileWindow   time.Duration `mapstructure:"RECONCILE_WINDOW"`

	// Requests per second allowed per client IP; zero disables the limiter.
	RateLimit float64 `mapstructure:"RATE_LIMIT"`
	RateBurst int     `mapstructure:"RATE_BURST"`

	AdminAPIKey string `mapstructure:"ADMIN_API_KEY"`
}

var keys = []string{
	"SERVER_PORT",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"USERS_TABLE", "MISSIONS_TABLE", "BOOKINGS_TABLE", "PAYMENTS_TABLE", "CHATS_TABLE", "MESSAGES_TABLE",
	"LEDGER_BACKEND",
	"PAYMENT_PROVIDER", "PAYMENT_GATEWAY_MOCK",
	"STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET",
	"MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_WEBHOOK_SECRET", "MERCADOPAGO_NOTIFICATION_URL",
	"CHECKOUT_SUCCESS_URL", "CHECKOUT_CANCEL_URL", "CURRENCY", "CHECKOUT_TIMEOUT",
	"REDIS_URL", "PROCESSED_EVENTS_TTL",
	"RABBITMQ_URL", "RABBITMQ_EXCHANGE",
	"RECONCILE_SCHEDULE", "RECONCILE_WINDOW",
	"RATE_LIMIT", "RATE_BURST",
	"ADMIN_API_KEY",
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "local")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	viper.SetDefault("USERS_TABLE", "users")
	viper.SetDefault("MISSIONS_TABLE", "missions")
	viper.SetDefault("BOOKINGS_TABLE", "bookings")
	viper.SetDefault("PAYMENTS_TABLE", "payments")
	viper.SetDefault("CHATS_TABLE", "chats")
	viper.SetDefault("MESSAGES_TABLE", "messages")
	viper.SetDefault("LEDGER_BACKEND", LedgerBackendDynamoDB)
	viper.SetDefault("PAYMENT_PROVIDER", ProviderStripe)
	viper.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	viper.SetDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success")
	viper.SetDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/checkout/cancel")
	viper.SetDefault("CURRENCY", "eur")
	viper.SetDefault("CHECKOUT_TIMEOUT", "10s")
	viper.SetDefault("PROCESSED_EVENTS_TTL", "72h")
	viper.SetDefault("RABBITMQ_EXCHANGE", "marketplace.payments")
	viper.SetDefault("RECONCILE_SCHEDULE", "@every 10m")
	viper.SetDefault("RECONCILE_WINDOW", "72h")
	viper.SetDefault("RATE_LIMIT", 20)
	viper.SetDefault("RATE_BURST", 40)
	viper.AutomaticEnv()

	for _, k := range keys {
		_ = viper.BindEnv(k)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.PaymentProvider = strings.ToLower(strings.TrimSpace(cfg.PaymentProvider))
	cfg.LedgerBackend = strings.ToLower(strings.TrimSpace(cfg.LedgerBackend))
	cfg.Currency = strings.ToLower(strings.TrimSpace(cfg.Currency))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.PaymentProvider {
	case ProviderStripe:
		if !c.PaymentGatewayMock && (c.StripeSecretKey == "" || c.StripeWebhookSecret == "") {
			return errors.New("STRIPE_SECRET_KEY and STRIPE_WEBHOOK_SECRET are required unless PAYMENT_GATEWAY_MOCK is set")
		}
	case ProviderMercadoPago:
		if !c.PaymentGatewayMock && (c.MercadoPagoAccessToken == "" || c.MercadoPagoWebhookSecret == "") {
			return errors.New("MERCADOPAGO_ACCESS_TOKEN and MERCADOPAGO_WEBHOOK_SECRET are required unless PAYMENT_GATEWAY_MOCK is set")
		}
	default:
		return fmt.Errorf("unsupported PAYMENT_PROVIDER %q", c.PaymentProvider)
	}

	switch c.LedgerBackend {
	case LedgerBackendDynamoDB, LedgerBackendMemory:
	default:
		return fmt.Errorf("unsupported LEDGER_BACKEND %q", c.LedgerBackend)
	}

	if c.CheckoutTimeout <= 0 {
		return errors.New("CHECKOUT_TIMEOUT must be positive")
	}
	return nil
}
