package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Marcelofury/SmartQueue/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const africasTalkingEndpoint = "https://api.africastalking.com/version1/messaging"

// AfricasTalkingProvider sends through the Africa's Talking bulk messaging
// REST API. There is no maintained Go SDK; the API is a single
// form-encoded POST.
type AfricasTalkingProvider struct {
	username   string
	apiKey     string
	senderID   string
	endpoint   string
	httpClient *http.Client
	logger     *log.Logger
}

func NewAfricasTalkingProvider(cfg config.AfricasTalking, logger *log.Logger) *AfricasTalkingProvider {
	return &AfricasTalkingProvider{
		username: cfg.Username,
		apiKey:   cfg.APIKey,
		senderID: cfg.SenderID,
		endpoint: africasTalkingEndpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (a *AfricasTalkingProvider) Enabled() bool {
	return true
}

type africasTalkingResponse struct {
	SMSMessageData struct {
		Recipients []struct {
			Status    string `json:"status"`
			MessageId string `json:"messageId"`
			Cost      string `json:"cost"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

func (a *AfricasTalkingProvider) Send(ctx context.Context, to, message string) error {
	form := url.Values{}
	form.Set("username", a.username)
	form.Set("to", formatPhoneNumber(to))
	form.Set("message", message)
	if a.senderID != "" {
		form.Set("from", a.senderID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "africastalking: failed to build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "africastalking: failed to send sms to %s", to)
	}
	defer resp.Body.Close()

	var body africasTalkingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "africastalking: failed to decode response")
	}

	if len(body.SMSMessageData.Recipients) == 0 {
		return errors.Errorf("africastalking: no recipients in response for %s", to)
	}

	recipient := body.SMSMessageData.Recipients[0]
	if recipient.Status != "Success" {
		return errors.Errorf("africastalking: delivery failed for %s: %s", to, recipient.Status)
	}

	a.logger.Infof("sms sent to %s: %s", to, recipient.MessageId)
	return nil
}

// Africa's Talking expects the international + prefix.
func formatPhoneNumber(to string) string {
	if strings.HasPrefix(to, "+") {
		return to
	}
	return "+" + to
}
