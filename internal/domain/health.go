package domain

import "context"

const (
	EmailConfigured         = "configured"
	EmailMissingRecipient   = "missing_recipient"
	EmailMissingCredentials = "missing_credentials"

	RateLimitStoreRedis  = "redis"
	RateLimitStoreMemory = "memory"
)

// HealthStatus reports readiness without exposing any secret values.
type HealthStatus struct {
	Status         string `json:"status"`
	Email          string `json:"email"`
	RateLimitStore string `json:"rate_limit_store"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
