// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger builds the zap logger used for pubsync diagnostics.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// S is the process-wide logger, set by Init. It is a no-op logger until then.
var S = zap.NewNop().Sugar()

// ParseLevel maps a config string to a zap level. Unknown values map to warn.
func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// New returns a JSON sugared logger writing to w at the given level.
func New(w io.Writer, level string) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(zapcore.AddSync(w))),
		ParseLevel(level),
	)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)).Sugar()
}

// Init installs a stderr logger at level as S.
func Init(level string) *zap.SugaredLogger {
	S = New(os.Stderr, level)
	return S
}

// Close flushes buffered log entries.
func Close() error {
	return S.Sync()
}
