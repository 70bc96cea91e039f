package provider

import (
	"context"

	"github.com/Marcelofury/SmartQueue/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioProvider struct {
	client *twilio.RestClient
	from   string
	logger *log.Logger
}

func NewTwilioProvider(cfg config.Twilio, logger *log.Logger) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSid,
		Password: cfg.AuthToken,
	})

	return &TwilioProvider{
		client: client,
		from:   cfg.FromNumber,
		logger: logger,
	}
}

func (t *TwilioProvider) Enabled() bool {
	return true
}

func (t *TwilioProvider) Send(_ context.Context, to, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(formatPhoneNumber(to))
	params.SetFrom(t.from)
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return errors.Wrapf(err, "twilio: failed to send sms to %s", to)
	}

	if resp.Sid != nil {
		t.logger.Infof("sms sent to %s: %s", to, *resp.Sid)
	}

	return nil
}
