package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Required values are enforced by must()
// and halt the process when missing; everything else has a default.
type Config struct {
	Env            string        // application environment (dev/test/prod)
	Port           string        // HTTP port to listen on
	DBUser         string        // database username
	DBPass         string        // database password (optional)
	DBHost         string        // database host address
	DBPort         string        // database port number
	DBName         string        // database name
	JWTSecret      string        // secret used to sign session tokens
	AccessTTL      time.Duration // session token time-to-live (default 24h)
	BcryptCost     int           // bcrypt cost for password hashing
	AllowedOrigins []string      // CORS allow-list
	ImagesService  string        // base URL of the image hosting service

	SMTP            SMTPConfig // outbound mail settings
	ResetURL        string     // base URL embedded in reset-password emails
	ResetTokenTTL   time.Duration
	ResetMaxAttempt int // forgot-password requests allowed per account
}

// SMTPConfig carries the outbound mail channel settings.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Load reads configuration values from environment variables and
// returns a Config. Missing required variables are fatal.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTL:      time.Duration(envInt("ACCESS_TOKEN_TTL_MIN", 1440)) * time.Minute,
		BcryptCost:     envInt("BCRYPT_COST", 12),
		AllowedOrigins: splitCSV(envStr("ALLOWED_ORIGINS", "*")),
		ImagesService:  envStr("IMAGES_SERVICE", ""),
		SMTP: SMTPConfig{
			Host: must("SMTP_HOST"),
			Port: envInt("SMTP_PORT", 465),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			From: must("SMTP_FROM"),
		},
		ResetURL:        must("RESET_PASSWORD_URL"),
		ResetTokenTTL:   envDur("RESET_TOKEN_TTL", 10*time.Minute),
		ResetMaxAttempt: envInt("RESET_ATTEMPT_LIMIT", 5),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application exits with a fatal log.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
