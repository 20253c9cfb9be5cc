// Package logger builds the structured logger used for tracker diagnostics.
package logger

import (
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunIDKey is the field every entry of a single run is tagged with.
const RunIDKey = "run_id"

// New creates a console logger with the given level writing to w.
// Each call gets its own run id.
func New(level string, w zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("cannot parse log level %q: %w", level, err)
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("cannot generate run id: %w", err)
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), w, lvl)
	return zap.New(core).With(zap.String(RunIDKey, runID.String())), nil
}
