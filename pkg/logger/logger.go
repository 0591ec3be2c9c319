package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL" default:"info"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a named zap logger writing to stderr (or cfg.Sink).
func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	sink := zapcore.Lock(os.Stderr)
	if cfg.Sink != "" {
		if f, err := os.OpenFile(cfg.Sink, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			sink = zapcore.Lock(f)
		}
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		sink,
		zap.NewAtomicLevelAt(cfg.LogLevel),
	)
	return zap.New(core, zap.AddCaller()).Named(name)
}
