package logger

import (
	"fmt"

	"kai-assistant/internal/application/port/output"

	"go.uber.org/zap"
)

var _ output.LoggerPort = (*ZapAdapter)(nil)

type ZapAdapter struct {
	sugar *zap.SugaredLogger
}

func NewZapAdapter(debug bool) (*ZapAdapter, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return &ZapAdapter{sugar: log.Sugar()}, nil
}

// NewNop returns an adapter that discards everything. Handy in tests.
func NewNop() *ZapAdapter {
	return &ZapAdapter{sugar: zap.NewNop().Sugar()}
}

func (l *ZapAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *ZapAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *ZapAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *ZapAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *ZapAdapter) WithField(key string, value any) output.LoggerPort {
	return &ZapAdapter{sugar: l.sugar.With(key, value)}
}

func (l *ZapAdapter) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &ZapAdapter{sugar: l.sugar.With(args...)}
}

func (l *ZapAdapter) Close() error {
	// Sync on stderr returns a spurious error on some platforms; callers
	// close on shutdown and cannot act on it anyway.
	_ = l.sugar.Sync()
	return nil
}
