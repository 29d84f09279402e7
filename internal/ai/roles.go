package ai

import (
	"github.com/keysummon/keysummon/internal/model"
)

// BuiltinRoles returns the roles that ship with the application. They are
// never persisted and cannot be edited or deleted.
func BuiltinRoles() []model.Role {
	return []model.Role{
		{
			ID:           "de-transcribe",
			Name:         "DE Transcribe",
			SystemPrompt: "Transcribe the following German audio accurately. Output only the transcription without any additional commentary.",
			OutputFormat: model.OutputPlain,
			Builtin:      true,
		},
		{
			ID:           "de-en-translate",
			Name:         "DE→EN Translate",
			SystemPrompt: "Translate the following German text to English. Maintain the original meaning and tone.",
			OutputFormat: model.OutputPlain,
			Builtin:      true,
		},
		{
			ID:           "beautify",
			Name:         "Beautify Text",
			SystemPrompt: "Improve the formatting, grammar, and clarity of this text while preserving its meaning.",
			OutputFormat: model.OutputPlain,
			Builtin:      true,
		},
		{
			ID:           "ai-response",
			Name:         "Format as AI Response",
			SystemPrompt: "Format this text as a professional, well-structured response suitable for an AI assistant.",
			OutputFormat: model.OutputPlain,
			Builtin:      true,
		},
	}
}
