package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerOptions struct {
	Key  string
	Data interface{}
}

// Logger is replaced by InitializeLogger; until then log calls are discarded.
var Logger = zap.NewNop()

var RequestMetricMonitor = NewPrometheusMonitor()

// InitializeLogger builds the zap logger for the current ENV.
func InitializeLogger() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("ENV") == "prod" {
		l, err = zap.NewProduction()
	} else {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		l, err = config.Build()
	}
	if err != nil {
		panic(err)
	}
	Logger = l
}

// Sync flushes buffered log entries.
func Sync() {
	Logger.Sync()
}

func fields(payload []LoggerOptions) []zapcore.Field {
	zapFields := []zapcore.Field{}
	for _, data := range payload {
		if err, ok := data.Data.(error); ok {
			zapFields = append(zapFields, zap.NamedError(data.Key, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(data.Key, data.Data))
	}
	return zapFields
}

// This logs info level messages.
func Info(msg string, payload ...LoggerOptions) {
	Logger.Info(msg, fields(payload)...)
}

// This logs error messages.
// describe the incident in msg and pass the error through logger options
// with key error
func Error(msg string, payload ...LoggerOptions) {
	Logger.Error(msg, fields(payload)...)
}

// This logs warning messages.
func Warning(msg string, payload ...LoggerOptions) {
	Logger.Warn(msg, fields(payload)...)
}
