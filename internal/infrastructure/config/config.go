package config

import (
	"errors"
	"os"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/pricing"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config enumerates every tunable of the service in one explicit struct,
// validated once at startup. Nothing downstream reads the environment.
type Config struct {
	ServicePort   int
	PublicBaseURL string

	JWT      JWTConfig
	Payment  PaymentConfig
	Location LocationConfig
	Tables   TableConfig

	Pricing pricing.Config
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type PaymentConfig struct {
	AccessToken   string
	Currency      string
	WebhookSecret string
}

type LocationConfig struct {
	BaseURL string
	Timeout time.Duration
}

type TableConfig struct {
	Proposals      string
	ApprovalTokens string
}

const (
	envJWTSecret          = "APPROVAL_TOKEN_SECRET"
	envPaymentAccessToken = "MERCADOPAGO_ACCESS_TOKEN"
	envWebhookSecret      = "PAYMENT_WEBHOOK_SECRET"
)

// NewConfig loads config.toml (optional) plus environment variables into the
// explicit Config struct. Secrets only ever come from the environment.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetDefault("service.port", 8080)
	viper.SetDefault("service.public_base_url", "")
	viper.SetDefault("jwt.ttl_hours", 24*30)
	viper.SetDefault("payment.currency", "USD")
	viper.SetDefault("location.base_url", "http://localhost:8090")
	viper.SetDefault("location.timeout_seconds", 10)
	viper.SetDefault("tables.proposals", "proposals")
	viper.SetDefault("tables.approval_tokens", "approval_tokens")
	viper.SetDefault("pricing.tax_rate", 0.0)
	viper.SetDefault("pricing.deposit_rate", 0.0)
	viper.SetDefault("pricing.transport_hourly_rate", 0.0)
	viper.SetDefault("pricing.validity_days", 0)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Printf("[config] no %s.toml found, using defaults and env", configName)
	}

	cfg := &Config{
		ServicePort:   viper.GetInt("service.port"),
		PublicBaseURL: viper.GetString("service.public_base_url"),
		JWT: JWTConfig{
			Secret: os.Getenv(envJWTSecret),
			TTL:    time.Duration(viper.GetInt("jwt.ttl_hours")) * time.Hour,
		},
		Payment: PaymentConfig{
			AccessToken:   os.Getenv(envPaymentAccessToken),
			Currency:      viper.GetString("payment.currency"),
			WebhookSecret: os.Getenv(envWebhookSecret),
		},
		Location: LocationConfig{
			BaseURL: viper.GetString("location.base_url"),
			Timeout: time.Duration(viper.GetInt("location.timeout_seconds")) * time.Second,
		},
		Tables: TableConfig{
			Proposals:      viper.GetString("tables.proposals"),
			ApprovalTokens: viper.GetString("tables.approval_tokens"),
		},
		Pricing: pricing.DefaultConfig(),
	}

	// Pricing-table overrides are opt-in; zero means "keep the reference value".
	if v := viper.GetFloat64("pricing.tax_rate"); v > 0 {
		cfg.Pricing.TaxRate = v
	}
	if v := viper.GetFloat64("pricing.deposit_rate"); v > 0 {
		cfg.Pricing.DepositRate = v
	}
	if v := viper.GetFloat64("pricing.transport_hourly_rate"); v > 0 {
		cfg.Pricing.TransportHourlyRate = v
	}
	if v := viper.GetInt("pricing.validity_days"); v > 0 {
		cfg.Pricing.ValidityDays = v
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New(envJWTSecret + " is required")
	}

	log.Info("config parsed")
	return cfg, nil
}
