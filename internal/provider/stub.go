package provider

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// StubProvider stands in when no SMS backend is configured. It only logs
// what would have been sent.
type StubProvider struct {
	logger *log.Logger
}

func NewStubProvider(logger *log.Logger) *StubProvider {
	return &StubProvider{
		logger: logger,
	}
}

func (s *StubProvider) Enabled() bool {
	return false
}

func (s *StubProvider) Send(_ context.Context, to, message string) error {
	s.logger.Infof("[SMS DISABLED] would send to %s: %s", to, message)
	return nil
}
