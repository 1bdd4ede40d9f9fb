package log

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

// SentryDefer .
func SentryDefer() {
	if sentryDSN == "" {
		return
	}
	defer sentry.Flush(2 * time.Second)
	if r := recover(); r != nil {
		sentry.CaptureMessage(fmt.Sprintf("%+v: %s", r, debug.Stack()))
		panic(r)
	}
}

func reportToSentry(ctx context.Context, level sentry.Level, err error, format string, args ...any) { //nolint
	if sentryDSN == "" || err == nil {
		return
	}
	defer sentry.Flush(2 * time.Second)
	event, extraDetails := errors.BuildSentryReport(err)
	for k, v := range extraDetails {
		event.Extra[k] = v
	}
	event.Level = level

	if msg := fmt.Sprintf(format, args...); msg != "" {
		event.Tags["message"] = msg
	}

	if tid := tracingID(ctx); tid != "" {
		event.Tags["tracing"] = tid
	}

	if res := sentry.CaptureEvent(event); res != nil {
		Infof(ctx, "Report to Sentry ID: %s", *res)
	}
}
