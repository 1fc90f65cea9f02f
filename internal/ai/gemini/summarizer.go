package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"talentrank/internal/logger"

	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

const defaultMaxLogLength = 200

// Summarizer produces client-ready candidate summaries through Gemini. It
// satisfies ai.Summarizer.
type Summarizer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewSummarizer(generator contentGenerator, maxLogLength int, log *zap.Logger) *Summarizer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Summarizer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Summarize sends the prompt to the generator and returns the trimmed text.
func (s *Summarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}

	s.logger.Debug("gemini summary request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	s.logger.Debug("gemini summary response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, s.maxLogLen)),
	)

	return strings.TrimSpace(raw), nil
}
