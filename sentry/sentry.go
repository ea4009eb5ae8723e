package sentry

import (
	"os"
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// Init configures the global Sentry client from SENTRY_DSN. With no DSN
// set, events are silently discarded, which is the right behavior for
// library consumers that never opted in.
func Init() {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		TracesSampleRate: 1.0,
	}); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
}

func ReportError(err error) {
	sentry.CaptureException(err)
}

func ReportMessage(message string) {
	sentry.CaptureMessage(message)
}

// Flush drains buffered events before process exit.
func Flush() {
	sentry.Flush(2 * time.Second)
}
