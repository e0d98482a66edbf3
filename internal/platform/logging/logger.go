package logging

import (
	"context"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level aliases the zap level so callers can parse and pass log levels
// without importing zap themselves.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

const loggerName = "checkball"

// Logger wraps zap with loosely-typed key/value pairs and trace
// correlation. The score pipeline logs through the *Context variants so
// every line for one widget request carries the same trace_id/span_id.
type Logger struct {
	zap    *zap.Logger
	synced atomic.Bool
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewNop())
}

// NewJSON builds the production logger: one JSON object per line on
// stdout, named after the service, stacktraces from error level up.
func NewJSON(level Level) *Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		level,
	)

	z := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return FromZap(z.Named(loggerName))
}

// NewNop returns a logger that discards everything. Tests inject it so
// service warnings do not pollute test output.
func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

// Default returns the process-wide logger set by SetDefault, or a no-op
// logger before main has configured one.
func Default() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	return NewNop()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	defaultLogger.Store(logger)
}

// Sync flushes buffered entries. Safe to defer from main; only the
// first call reaches zap.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	if l.synced.CompareAndSwap(false, true) {
		return l.zap.Sync()
	}
	return nil
}

// With returns a child logger that adds the given key/value pairs to
// every entry.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return FromZap(l.zap.With(fieldsFromArgs(args)...))
}

func (l *Logger) Debug(msg string, args ...any) {
	l.write(nil, zap.DebugLevel, msg, args)
}

func (l *Logger) Info(msg string, args ...any) {
	l.write(nil, zap.InfoLevel, msg, args)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.write(nil, zap.WarnLevel, msg, args)
}

func (l *Logger) Error(msg string, args ...any) {
	l.write(nil, zap.ErrorLevel, msg, args)
}

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, zap.DebugLevel, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, zap.InfoLevel, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, zap.WarnLevel, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, zap.ErrorLevel, msg, args)
}

func (l *Logger) write(ctx context.Context, level zapcore.Level, msg string, args []any) {
	logger := l
	if logger == nil {
		logger = Default()
	}

	ce := logger.zap.Check(level, msg)
	if ce == nil {
		return
	}

	fields := fieldsFromArgs(args)
	if ctx != nil {
		fields = append(fields, spanFields(ctx)...)
	}
	ce.Write(fields...)
}

// spanFields pulls the otel span identity out of the context so log
// lines can be joined with traces. No span, no fields.
func spanFields(ctx context.Context) []zap.Field {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	}
}

// fieldsFromArgs converts alternating key/value arguments into zap
// fields. Non-string keys become "arg", a dangling key gets a nil
// value, and error values keep zap's error encoding.
func fieldsFromArgs(args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}

		if i+1 >= len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}

		if err, ok := args[i+1].(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, args[i+1]))
	}

	return out
}
