package sentry

import (
	"time"

	"github.com/getsentry/sentry-go"

	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/pkg/logger"
)

// SentryService reports errors to Sentry. It is a no-op when SENTRY_DSN is unset.
type SentryService struct {
	initialized bool
}

// NewSentryService initializes the global Sentry client from cfg
func NewSentryService(cfg *config.Config) *SentryService {
	if cfg.SentryDSN == "" {
		logger.Info("SENTRY_DSN not set, Sentry disabled")
		return &SentryService{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.SentryEnvironment,
		TracesSampleRate: 1.0,
		EnableTracing:    true,
	})
	if err != nil {
		logger.Warning("Sentry initialization failed: %v", err)
		return &SentryService{}
	}

	logger.Info("Sentry initialized for environment %s", cfg.SentryEnvironment)
	return &SentryService{initialized: true}
}

// Enabled reports whether events are sent
func (s *SentryService) Enabled() bool {
	return s.initialized
}

// CaptureException sends err to Sentry
func (s *SentryService) CaptureException(err error) {
	if !s.initialized {
		return
	}
	sentry.CaptureException(err)
}

// CaptureMessage sends message to Sentry
func (s *SentryService) CaptureMessage(message string) {
	if !s.initialized {
		return
	}
	sentry.CaptureMessage(message)
}

// Flush waits for buffered events
func (s *SentryService) Flush(timeout time.Duration) bool {
	if !s.initialized {
		return true
	}
	return sentry.Flush(timeout)
}

// Close flushes the client
func (s *SentryService) Close() {
	s.Flush(2 * time.Second)
}
