package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DB holds Postgres connection settings for the store service.
type DB struct {
	Host    string
	Port    int
	User    string
	Pass    string
	Name    string
	SSLMode string
}

// Store configures the catalog/cart/checkout API.
type Store struct {
	AppEnv   string
	LogLevel string
	HTTPPort int

	DB DB

	// Base URL of the payment-session service.
	PaymentsURL string
}

// Payments configures the payment-session service.
type Payments struct {
	AppEnv   string
	LogLevel string
	HTTPPort int

	StripeSecretKey string
	SuccessURL      string
	CancelURL       string

	// Base URL of the notification service; empty disables the
	// payment-confirmation side channel.
	NotificationsURL string
}

// Notifications configures the notification dispatcher.
type Notifications struct {
	AppEnv   string
	LogLevel string
	HTTPPort int

	SMTPHost string
	SMTPPort int
	// Sender address and its application-specific mail credential.
	Sender      string
	AppPassword string
}

// LoadStore reads store configuration from the environment. A .env file
// is loaded first if present so secrets can live there locally.
func LoadStore() Store {
	_ = godotenv.Load()

	return Store{
		AppEnv:   getenv("APP_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		HTTPPort: getenvInt("HTTP_PORT", 8080),
		DB: DB{
			Host:    getenv("POSTGRES_HOST", "localhost"),
			Port:    getenvInt("POSTGRES_PORT", 5432),
			User:    getenv("POSTGRES_USER", "vetstore"),
			Pass:    getenv("POSTGRES_PASSWORD", "vetstore"),
			Name:    getenv("POSTGRES_DB", "vetstore_db"),
			SSLMode: getenv("POSTGRES_SSLMODE", "disable"),
		},
		PaymentsURL: getenv("PAYMENTS_URL", "http://localhost:5000"),
	}
}

// LoadPayments reads payment-session service configuration.
func LoadPayments() Payments {
	_ = godotenv.Load()

	return Payments{
		AppEnv:           getenv("APP_ENV", "dev"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		HTTPPort:         getenvInt("HTTP_PORT", 5000),
		StripeSecretKey:  getenv("STRIPE_SECRET_KEY", ""),
		SuccessURL:       getenv("FRONTEND_SUCCESS_URL", "http://localhost:5500/success.html"),
		CancelURL:        getenv("FRONTEND_CANCEL_URL", "http://localhost:5500/cancel.html"),
		NotificationsURL: getenv("NOTIFICATIONS_URL", ""),
	}
}

// LoadNotifications reads notification dispatcher configuration.
func LoadNotifications() Notifications {
	_ = godotenv.Load()

	return Notifications{
		AppEnv:      getenv("APP_ENV", "dev"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		HTTPPort:    getenvInt("HTTP_PORT", 8000),
		SMTPHost:    getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getenvInt("SMTP_PORT", 587),
		Sender:      getenv("EMAIL_REMITENTE", ""),
		AppPassword: getenv("EMAIL_CLAVE_APP", ""),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
