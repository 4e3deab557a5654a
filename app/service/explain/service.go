package explain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"etymonabot/app/config"

	_ "embed"

	"github.com/samber/do"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

//go:embed system_prompt.txt
var systemPrompt string

const (
	maxExplainDuration = 30 * time.Second
	maxResponseTokens  = 1000
)

// Service produces a morphology/etymology breakdown of a single word with
// one completion call. No retries: the caller decides what to tell the user.
type Service struct {
	model llms.Model
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	llm, err := openai.New(
		openai.WithBaseURL(cfg.OpenAI.BaseURL),
		openai.WithToken(cfg.OpenAI.Token),
		openai.WithModel(cfg.OpenAI.Model),
		openai.WithCallback(logHandler{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return &Service{model: llm}, nil
}

func (s *Service) Explain(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", ErrEmptyWord
	}

	ctx, cancel := context.WithTimeout(ctx, maxExplainDuration)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, "Сделай этимолого-морфемный разбор слова: "+word),
		},
		llms.WithMaxTokens(maxResponseTokens),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	result := strings.TrimSpace(resp.Choices[0].Content)
	if result == "" {
		return "", fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}

	return result, nil
}
