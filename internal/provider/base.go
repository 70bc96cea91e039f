package provider

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/config"
	log "github.com/sirupsen/logrus"
)

// SMSProvider is the delivery backend behind the notifier. Enabled reports
// whether a real channel is configured; Send is best-effort and its errors
// are logged by callers, never surfaced to queue operations.
type SMSProvider interface {
	Enabled() bool
	Send(ctx context.Context, to, message string) error
}

// New selects the provider variant by configuration. Unknown or empty
// provider names fall back to the disabled stub.
func New(cfg config.SMS, logger *log.Logger) SMSProvider {
	switch cfg.Provider {
	case "twilio":
		if cfg.Twilio.AccountSid == "" || cfg.Twilio.AuthToken == "" {
			logger.Warn("twilio credentials not configured - SMS notifications disabled")
			return NewStubProvider(logger)
		}
		return NewTwilioProvider(cfg.Twilio, logger)
	case "africastalking":
		if cfg.AfricasTalking.APIKey == "" {
			logger.Warn("africa's talking credentials not configured - SMS notifications disabled")
			return NewStubProvider(logger)
		}
		return NewAfricasTalkingProvider(cfg.AfricasTalking, logger)
	default:
		logger.Warn("no SMS provider configured - SMS notifications disabled")
		return NewStubProvider(logger)
	}
}
