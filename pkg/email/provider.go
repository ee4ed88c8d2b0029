package email

import (
	"fmt"
	"time"

	"portfolio-backend/config"
)

const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

// NewSenderFactory returns a factory for the provider selected by
// EMAIL_PROVIDER. Nothing is validated here; missing secrets surface as
// ErrNotConfigured when the factory runs.
func NewSenderFactory(cfg *config.Config) SenderFactory {
	return func() (Sender, error) {
		switch cfg.EmailProvider {
		case ProviderResend, "":
			if cfg.ResendAPIKey == "" {
				return nil, fmt.Errorf("%w: RESEND_API_KEY is not set", ErrNotConfigured)
			}
			timeout := time.Duration(cfg.EmailTimeoutSeconds) * time.Second
			return NewResendClient(cfg.ResendAPIKey, cfg.ResendAPIURL, timeout)
		case ProviderSMTP:
			return NewSMTPSender(SMTPConfig{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				Username: cfg.SMTPUsername,
				Password: cfg.SMTPPassword,
			}, DefaultTemplates(cfg.NotificationTemplate, cfg.ConfirmationTemplate))
		default:
			return nil, fmt.Errorf("%w: unknown EMAIL_PROVIDER %q", ErrNotConfigured, cfg.EmailProvider)
		}
	}
}

// CredentialsPresent reports whether the selected provider has what it needs
// without building a client. Used by the health check.
func CredentialsPresent(cfg *config.Config) bool {
	switch cfg.EmailProvider {
	case ProviderResend, "":
		return cfg.ResendAPIKey != ""
	case ProviderSMTP:
		return SMTPConfig{Host: cfg.SMTPHost, Username: cfg.SMTPUsername, Password: cfg.SMTPPassword}.IsConfigured()
	default:
		return false
	}
}
