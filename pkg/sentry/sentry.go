package sentry

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter forwards server-side failures to Sentry. A Reporter built with an
// empty DSN does nothing.
type Reporter struct {
	enabled bool
}

// New initializes the Sentry client when dsn is set.
func New(dsn, environment string, log *slog.Logger) *Reporter {
	if dsn == "" {
		log.Info("SENTRY_DSN not set, Sentry disabled")
		return &Reporter{}
	}
	if environment == "" {
		environment = "development"
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Warn("sentry initialization failed", slog.String("error", err.Error()))
		return &Reporter{}
	}
	log.Info("sentry initialized", slog.String("environment", environment))
	return &Reporter{enabled: true}
}

// Enabled reports whether events are actually sent.
func (r *Reporter) Enabled() bool { return r != nil && r.enabled }

// CaptureException reports err with optional string tags.
func (r *Reporter) CaptureException(err error, tags map[string]string) {
	if !r.Enabled() || err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}

// Flush waits up to timeout for buffered events to be sent.
func (r *Reporter) Flush(timeout time.Duration) bool {
	if !r.Enabled() {
		return true
	}
	return sentry.Flush(timeout)
}
