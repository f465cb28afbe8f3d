package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
)

func init() {
	setOutput(zapcore.AddSync(os.Stdout))
}

// setOutput rebuilds the package logger on top of out.
func setOutput(out zapcore.WriteSyncer) {
	logger = newLogger(out, levelFromEnv(), os.Getenv("APPLICATION_NAME"))
	sugar = logger.Sugar()
}

// newLogger builds the JSON logger shipped to the log pipeline: @timestamp in ISO8601,
// caller under logger_name and every entry tagged with logName.
func newLogger(out zapcore.WriteSyncer, level zapcore.Level, application string) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, level)
	return zap.New(core,
		zap.Fields(zap.String("logName", application)),
		zap.AddCaller(),
		zap.AddCallerSkip(1))
}

// levelFromEnv reads LOG_LEVEL (debug, info, warn, error) and defaults to info.
func levelFromEnv() zapcore.Level {
	level, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// Sync flushes buffered entries. Call it before exit.
func Sync() {
	_ = logger.Sync()
}

func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infow logs with loosely typed key/value pairs.
func Infow(message string, keysAndValues ...any) {
	sugar.Infow(message, keysAndValues...)
}

func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

func Warnw(message string, keysAndValues ...any) {
	sugar.Warnw(message, keysAndValues...)
}

func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

func Debugw(message string, keysAndValues ...any) {
	sugar.Debugw(message, keysAndValues...)
}

func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

func Errorf(format string, args ...any) {
	sugar.Errorf(format, args...)
}

// Fatal logs and exits the process with status 1.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

func Fatalf(format string, args ...any) {
	sugar.Fatalf(format, args...)
}
