package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a wrapper around Uber's Zap logger.
// It implements the Logger interface and satisfies the narrower logging
// interfaces declared by the client packages (eventportal, schema_registry, minio).
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance. It is exposed for callers
	// that need zap-specific functionality; most logging should go through
	// the wrapper methods.
	Zap *zap.Logger

	// tracingEnabled makes the *WithContext methods attach trace/span IDs.
	tracingEnabled bool
}

// NewLoggerClient builds a LoggerClient from cfg.
//
// The logger writes to stderr with:
//   - JSON (default) or console encoding
//   - ISO8601 timestamps under the "timestamp" key
//   - upper-case level names without colors
//   - "pid" and "service" as initial fields
//   - caller information, honoring cfg.CallerSkip
//
// If the zap configuration cannot be built the process exits via log.Fatal.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "eventportal",
//	})
//	log.Info("provisioning started", nil, map[string]interface{}{"domain": "Acme"})
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	encoding := EncodingJSON
	if cfg.Encoding == EncodingConsole {
		encoding = EncodingConsole
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: true,
		Sampling:          nil,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	logger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{
		Zap:            logger,
		tracingEnabled: cfg.EnableTracing,
	}
}

// parseLevel maps a Config.Level string to a zap level, defaulting to info.
func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
