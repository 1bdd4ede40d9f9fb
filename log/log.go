package log

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/projecteru2/memsize/types"
)

var (
	globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	sentryDSN    string
)

// SetupLog init logger
func SetupLog(ctx context.Context, cfg *types.LogConfig, dsn string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stderr
	if cfg.Filename != "" {
		if writer, err = os.OpenFile(cfg.Filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644); err != nil { //nolint
			return err
		}
	}
	if !cfg.UseJSON {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.RFC822,
			NoColor:    cfg.Filename != "",
		}
	}
	globalLogger = zerolog.New(writer).Level(level).With().Timestamp().Logger()

	// Sentry
	if dsn != "" {
		sentryDSN = dsn
		WithFunc("log.SetupLog").Infof(ctx, "sentry %v", sentryDSN)
		_ = sentry.Init(sentry.ClientOptions{Dsn: sentryDSN})
	}
	return nil
}

// Fatalf forwards to sentry
func Fatalf(ctx context.Context, err error, format string, args ...any) {
	fatalf(ctx, err, format, nil, args...)
}

// Warnf is Warnf
func Warnf(ctx context.Context, format string, args ...any) {
	warnf(ctx, format, nil, args...)
}

// Infof is Infof
func Infof(ctx context.Context, format string, args ...any) {
	infof(ctx, format, nil, args...)
}

// Debugf is Debugf
func Debugf(ctx context.Context, format string, args ...any) {
	debugf(ctx, format, nil, args...)
}

// Errorf forwards to sentry
func Errorf(ctx context.Context, err error, format string, args ...any) {
	errorf(ctx, err, format, nil, args...)
}

// Error forwards to sentry
func Error(ctx context.Context, err error, args ...any) {
	Errorf(ctx, err, "%+v", args...)
}
