package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session credentials. SessionExpiry is the single expiry constant for
	// every issued token (earlier deployments drifted between 1h and 5h;
	// 5h is the canonical value here).
	JWTSecret     string
	SessionExpiry time.Duration

	// Payment processor
	PaymentSecretKey string
	PaymentAPIURL    string
	PaymentCurrency  string

	// Admin bootstrap: identities granted admin regardless of their stored
	// role, so a fresh deployment is administrable.
	AdminEmails string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "scholarpoint"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:     getEnv("JWT_ACCESS_TOKEN_SECRET", ""),
		SessionExpiry: parseDuration(getEnv("SESSION_EXPIRY", "5h")),

		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		PaymentAPIURL:    getEnv("PAYMENT_API_URL", "https://api.stripe.com"),
		PaymentCurrency:  getEnv("PAYMENT_CURRENCY", "usd"),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 5 * time.Hour
	}
	return d
}
