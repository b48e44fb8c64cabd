package config

import (
	"os"
	"strconv"
	"time"
)

// Config gathers everything main needs from the environment so wiring stays
// in one place.
type Config struct {
	Addr        string
	DatabaseURL string

	JWTSigningKey string
	JWTIssuer     string
	JWTExpiry     time.Duration

	AMQPURL string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

func FromEnv() Config {
	expiryMinutes := intEnv("JWT_EXPIRATION_MINUTES", 60)

	return Config{
		Addr:          envOr("ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-change-in-production"),
		JWTIssuer:     envOr("JWT_ISSUER", "neocustomers"),
		JWTExpiry:     time.Duration(expiryMinutes) * time.Minute,
		AMQPURL:       os.Getenv("AMQP_URL"),
		SMTPHost:      os.Getenv("MAIL_HOST"),
		SMTPPort:      intEnv("MAIL_PORT", 587),
		SMTPUser:      os.Getenv("MAIL_USER"),
		SMTPPass:      os.Getenv("MAIL_PASS"),
		MailFrom:      envOr("MAIL_FROM", "nao-responda@neocustomers.com"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
