package explain

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/callbacks"
)

var _ callbacks.Handler = (*logHandler)(nil)

// logHandler surfaces LLM failures into the default logger; everything
// else stays quiet.
type logHandler struct {
	callbacks.SimpleHandler
}

func (logHandler) HandleLLMError(ctx context.Context, err error) {
	slog.ErrorContext(ctx, "LLM error", "error", err)
}

func (logHandler) HandleChainError(ctx context.Context, err error) {
	slog.ErrorContext(ctx, "Chain error", "error", err)
}
