package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured log keys shared across packages.
const (
	FieldProvider   = "ai_provider"
	FieldModel      = "ai_model"
	FieldUser       = "user"
	FieldArtifact   = "artifact"
	FieldAssessment = "assessment_id"
)

// StringField is a string-valued log field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts pairs into zap fields. Keys and values are trimmed and
// pairs with an empty side are dropped.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		key, value := strings.TrimSpace(f.Key), strings.TrimSpace(f.Value)
		if key != "" && value != "" {
			result = append(result, zap.String(key, value))
		}
	}
	return result
}

// WithFields attaches fields to logger. A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// AIFields describes the AI provider and model of a request.
func AIFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithAIFields attaches AIFields to logger.
func WithAIFields(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, AIFields(provider, model)...)
}

// AssessmentFields identifies a saved assessment. An unsaved one only carries the user.
func AssessmentFields(user, id string) []zap.Field {
	return StringFields(
		StringField{Key: FieldUser, Value: user},
		StringField{Key: FieldAssessment, Value: id},
	)
}

// WithArtifact attaches the model artifact path to logger.
func WithArtifact(logger *zap.Logger, path string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldArtifact, Value: path})...)
}
