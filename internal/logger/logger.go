package logger

import (
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the global logger from config. Production gets structured
// JSON logs, everything else gets the colorful development encoder.
func Init(cfg *config.Config) {
	var logConfig zap.Config

	if cfg.Env == "production" {
		logConfig = zap.NewProductionConfig()
	} else {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}
	logConfig.Level.SetLevel(level)

	var err error
	log, err = logConfig.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
}

// Get returns the global logger, falling back to a no-op logger when Init
// has not run (tests).
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
