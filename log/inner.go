package log

import (
	"context"

	"github.com/alphadose/haxmap"
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/projecteru2/memsize/types"
)

func fatalf(ctx context.Context, err error, format string, fields *haxmap.Map[string, any], args ...any) {
	args = argsValidate(args)
	reportToSentry(ctx, sentry.LevelFatal, err, format, args...)
	f := globalLogger.Fatal()
	wrap(ctx, f, fields).Err(err).Msgf(format, args...)
}

func warnf(ctx context.Context, format string, fields *haxmap.Map[string, any], args ...any) {
	args = argsValidate(args)
	f := globalLogger.Warn()
	wrap(ctx, f, fields).Msgf(format, args...)
}

func infof(ctx context.Context, format string, fields *haxmap.Map[string, any], args ...any) {
	args = argsValidate(args)
	f := globalLogger.Info()
	wrap(ctx, f, fields).Msgf(format, args...)
}

func debugf(ctx context.Context, format string, fields *haxmap.Map[string, any], args ...any) {
	args = argsValidate(args)
	f := globalLogger.Debug()
	wrap(ctx, f, fields).Msgf(format, args...)
}

func errorf(ctx context.Context, err error, format string, fields *haxmap.Map[string, any], args ...any) {
	if err == nil {
		return
	}
	args = argsValidate(args)
	reportToSentry(ctx, sentry.LevelError, err, format, args...)
	f := globalLogger.Error()
	wrap(ctx, f, fields).Err(err).Msgf(format, args...)
}

func argsValidate(args []any) []any {
	if len(args) > 0 {
		return args
	}
	return []any{""}
}

func wrap(ctx context.Context, f *zerolog.Event, kv *haxmap.Map[string, any]) *zerolog.Event {
	if tid := tracingID(ctx); tid != "" {
		f = f.Str("tracing_id", tid)
	}
	if kv == nil {
		return f
	}
	kv.ForEach(func(k string, v any) bool {
		f = f.Interface(k, v)
		return true
	})
	return f
}

func tracingID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if tid, ok := ctx.Value(types.TracingID).(string); ok {
		return tid
	}
	return ""
}
