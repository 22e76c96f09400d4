package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Init builds the global logger. Production encoding when ENV=production,
// human-readable development encoding otherwise.
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

// L returns the global logger, initializing it on first use so tests and
// helper binaries don't have to call Init themselves.
func L() *zap.Logger {
	if Logger == nil {
		Init()
	}
	return Logger
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	_ = L().Sync()
}

func Info(msg string, fields ...zapcore.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zapcore.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zapcore.Field) { L().Error(msg, fields...) }
func Debug(msg string, fields ...zapcore.Field) { L().Debug(msg, fields...) }
