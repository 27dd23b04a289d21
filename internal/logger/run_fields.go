package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldRunID is the structured log field key for the training run id.
	FieldRunID = "run_id"
	// FieldModelPath is the structured log field key for the model artifact path.
	FieldModelPath = "model_path"
)

// WithRunFields tags the logger with the identity of one training run.
// Blank values are dropped so entries stay compact when information is
// missing; a nil logger degrades to a no-op one instead of panicking.
func WithRunFields(log *zap.Logger, runID, modelPath string) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}

	fields := make([]zap.Field, 0, 2)
	if v := strings.TrimSpace(runID); v != "" {
		fields = append(fields, zap.String(FieldRunID, v))
	}
	if v := strings.TrimSpace(modelPath); v != "" {
		fields = append(fields, zap.String(FieldModelPath, v))
	}
	if len(fields) == 0 {
		return log
	}

	return log.With(fields...)
}
