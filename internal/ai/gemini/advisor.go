package gemini

import (
	"context"
	_ "embed"
	"strings"
	"unicode/utf8"

	"github.com/spigell/career-mentor/internal/utils"

	"go.uber.org/zap"
)

//go:embed prompt.md
var systemPrompt string

const defaultMaxLogLength = 200

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

// Advisor answers free-form career questions with Gemini.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewAdvisor creates an Advisor. Non-positive maxLogLength uses the default.
func NewAdvisor(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Advisor{generator: generator, logger: logger, maxLogLen: maxLogLength}
}

// Answer returns the model's reply to question.
func (a *Advisor) Answer(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)

	a.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(question)),
		zap.String("prompt_preview", utils.TruncateForLog(question, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, systemPrompt, question)
	if err != nil {
		return "", err
	}

	answer := cleanAnswer(raw)
	a.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(answer)),
		zap.String("response_preview", utils.TruncateForLog(answer, a.maxLogLen)),
	)

	return answer, nil
}

// cleanAnswer strips code fences the model sometimes wraps plain text in.
func cleanAnswer(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
