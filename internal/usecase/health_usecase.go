package usecase

import (
	"context"
	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
)

type healthUsecase struct {
	cfg            *config.Config
	redisAvailable func() bool
}

// NewHealthUsecase reports email readiness from cfg and which store backs the
// rate limiter. redisAvailable may be nil when Redis is not wired.
func NewHealthUsecase(cfg *config.Config, redisAvailable func() bool) domain.HealthUsecase {
	return &healthUsecase{cfg: cfg, redisAvailable: redisAvailable}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	status := domain.HealthStatus{
		Status:         "ok",
		Email:          domain.EmailConfigured,
		RateLimitStore: domain.RateLimitStoreMemory,
	}

	switch {
	case u.cfg.ContactEmailTo == "":
		status.Email = domain.EmailMissingRecipient
	case !email.CredentialsPresent(u.cfg):
		status.Email = domain.EmailMissingCredentials
	}

	if u.redisAvailable != nil && u.redisAvailable() {
		status.RateLimitStore = domain.RateLimitStoreRedis
	}
	return status
}
