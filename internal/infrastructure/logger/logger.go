package logger

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.Logger
	once   sync.Once
)

// Init builds the global logger. Production encoding when APP_ENV=production,
// colored development output otherwise.
func Init() {
	once.Do(func() {
		var cfg zap.Config
		if os.Getenv("APP_ENV") == "production" {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		var err error
		global, err = cfg.Build()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
	})
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if global == nil {
		Init()
	}
	return global
}

// S returns the sugared form of the global logger.
func S() *zap.SugaredLogger {
	return L().Sugar()
}
