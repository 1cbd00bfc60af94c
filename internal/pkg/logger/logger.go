package logger

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
	// With returns a child logger that attaches the given key/value pair to every entry.
	With(key, value string) Logger
	Sync() error
}

// Config selects the level and encoding of the logger.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

type zapLogger struct {
	zap *zap.Logger
}

// New builds a zap-backed Logger.
func New(cfg Config) (Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		if cfg.Level != "" {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Sampling = nil
	if cfg.Format == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	z, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &zapLogger{zap: z}, nil
}

// NewFromZap wraps an existing zap logger. Tests use it with zaptest/observer cores.
func NewFromZap(z *zap.Logger) Logger {
	return &zapLogger{zap: z.WithOptions(zap.AddCallerSkip(1))}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &zapLogger{zap: zap.NewNop()}
}

// Error logs an error message. err may be nil.
func (l *zapLogger) Error(msg string, err error) {
	if err == nil {
		l.zap.Error(msg)
		return
	}
	l.zap.Error(msg, zap.Error(err))
}

func (l *zapLogger) Warn(msg string) {
	l.zap.Warn(msg)
}

func (l *zapLogger) Info(msg string) {
	l.zap.Info(msg)
}

func (l *zapLogger) Debug(msg string) {
	l.zap.Debug(msg)
}

func (l *zapLogger) With(key, value string) Logger {
	return &zapLogger{zap: l.zap.With(zap.String(key, value))}
}

// Sync flushes buffered entries. Sync errors on stdout/stderr are ignored.
func (l *zapLogger) Sync() error {
	err := l.zap.Sync()
	if err != nil && (errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)) {
		return nil
	}
	return err
}
