package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Init builds the global logger. Production config when ENV=production,
// development config otherwise.
func Init() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = l
}

// Close flushes buffered log entries.
func Close() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if Logger == nil {
		Init()
	}
	return Logger
}

func Info(msg string, fields ...zapcore.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	L().Error(msg, fields...)
}
