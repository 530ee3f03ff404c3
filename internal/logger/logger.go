package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/trivia-bot/internal/config"
)

const serviceName = "trivia-bot"

// New returns a JSON logger with ISO8601 timestamps for env=production and a
// colored development logger otherwise. Every entry carries the service name
// and environment.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zc.InitialFields = map[string]any{
		"service": serviceName,
		"env":     cfg.Env,
	}

	return zc.Build()
}
