// Package logger builds the zap logger used by the lvalgo CLI.
package logger

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Off disables logging entirely.
const Off = "off"

// ParseLevel normalizes level and maps it to a zap level.
// Empty or unknown levels fall back to info. ok is false for Off.
func ParseLevel(level string) (lvl zapcore.Level, ok bool) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == Off || normalized == "none" {
		return zapcore.InfoLevel, false
	}

	lvl, err := zapcore.ParseLevel(normalized)
	if err != nil {
		return zapcore.InfoLevel, true
	}

	return lvl, true
}

// New returns a console logger writing to w at the given level.
// A nil writer or the Off level yields a no-op logger.
func New(w io.Writer, level string) *zap.Logger {
	lvl, ok := ParseLevel(level)
	if !ok || w == nil {
		return zap.NewNop()
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core)
}
