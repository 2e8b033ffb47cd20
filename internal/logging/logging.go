package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger from a level name (debug, info, warn, error)
// and an output format (console or json).
func NewLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch format {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build()
}

// EngineLogger adapts a zap logger to the engine's Logger interface.
type EngineLogger struct {
	s *zap.SugaredLogger
}

// NewEngineLogger wraps a zap logger for use by the calculation engine.
func NewEngineLogger(l *zap.Logger) *EngineLogger {
	return &EngineLogger{s: l.Sugar()}
}

func (e *EngineLogger) Debugf(format string, args ...any) { e.s.Debugf(format, args...) }
func (e *EngineLogger) Infof(format string, args ...any)  { e.s.Infof(format, args...) }
func (e *EngineLogger) Warnf(format string, args ...any)  { e.s.Warnf(format, args...) }
func (e *EngineLogger) Errorf(format string, args ...any) { e.s.Errorf(format, args...) }
