package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string
	// Public site, used for CORS and absolute sitemap URLs
	SiteURL        string
	FrontendURL    string
	AllowedOrigins []string
	// Email provider: "resend" (hosted templates) or "smtp"
	EmailProvider       string
	ResendAPIKey        string
	ResendAPIURL        string
	EmailTimeoutSeconds int
	// Contact form routing
	ContactEmailTo       string
	ContactFromEmail     string
	NotificationTemplate string
	ConfirmationTemplate string
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is optional; in production the platform injects the environment
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// Strip trailing slashes so joined paths never produce "//"
		SiteURL:        strings.TrimRight(getEnv("SITE_URL", "https://juliandelgado.com.au"), "/"),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
		// Email provider
		EmailProvider:       strings.ToLower(getEnv("EMAIL_PROVIDER", "resend")),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		ResendAPIURL:        strings.TrimRight(getEnv("RESEND_API_URL", "https://api.resend.com"), "/"),
		EmailTimeoutSeconds: getEnvInt("EMAIL_TIMEOUT_SECONDS", 10),
		// Contact form
		ContactEmailTo:       getEnv("CONTACT_TO_EMAIL", ""),
		ContactFromEmail:     getEnv("CONTACT_FROM_EMAIL", "Julian Delgado <hello@juliandelgado.com.au>"),
		NotificationTemplate: getEnv("CONTACT_NOTIFICATION_TEMPLATE", "new-client-inquiry-notification"),
		ConfirmationTemplate: getEnv("CONTACT_CONFIRMATION_TEMPLATE", "auto-reply-confirmation"),
		// SMTP
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		// Redis/Upstash
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate limiting (contact form is cheap to abuse, keep the window wide)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 600),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
	}

	// Secrets may be absent at build/boot time; requests report it instead of the process dying
	if cfg.ContactEmailTo == "" {
		log.Println("WARNING: CONTACT_TO_EMAIL is missing. Contact form submissions will be rejected.")
	}
	if cfg.EmailProvider == "resend" && cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Email sending will fail until it is set.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
