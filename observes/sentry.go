package observes

import (
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/ncobase/coursenav/config"
	"github.com/sirupsen/logrus"
)

// SentryOptions sentry options
type SentryOptions struct {
	Dsn         string
	Name        string
	Release     string
	Environment string
	SampleRate  float64
}

// SentryOptionsFrom builds sentry options from the config, nil when disabled
func SentryOptionsFrom(cfg *config.Config) *SentryOptions {
	if cfg == nil || cfg.Observes == nil || cfg.Observes.Sentry == nil || cfg.Observes.Sentry.Endpoint == "" {
		return nil
	}
	s := cfg.Observes.Sentry
	env := s.Environment
	if env == "" {
		env = cfg.RunMode
	}
	return &SentryOptions{
		Dsn:         s.Endpoint,
		Name:        cfg.AppName,
		Release:     s.Release,
		Environment: env,
		SampleRate:  s.SampleRate,
	}
}

// NewSentry registers sentry and returns a flush function
func NewSentry(opt *SentryOptions) (func(), error) {
	if opt == nil {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opt.Dsn,
		AttachStacktrace: true,
		SampleRate:       opt.SampleRate,
		ServerName:       opt.Name,
		Release:          opt.Release,
		Environment:      opt.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init sentry: %w", err)
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// SentryHook forwards error level log entries to sentry
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook creates a hook bound to the current hub
func NewSentryHook() *SentryHook {
	return &SentryHook{hub: sentry.CurrentHub()}
}

// Levels returns the levels reported to sentry
func (h *SentryHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

// Fire reports the entry
func (h *SentryHook) Fire(entry *logrus.Entry) error {
	if h.hub == nil || h.hub.Client() == nil {
		return nil
	}
	h.hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range entry.Data {
			if k == logrus.ErrorKey {
				continue
			}
			scope.SetExtra(k, v)
		}
		scope.SetLevel(sentryLevel(entry.Level))
		if err, ok := entry.Data[logrus.ErrorKey].(error); ok && err != nil {
			h.hub.CaptureException(err)
			return
		}
		h.hub.CaptureException(errors.New(entry.Message))
	})
	return nil
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	default:
		return sentry.LevelInfo
	}
}
