package port

import (
	"context"
	"errors"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// ErrMissingAPIKey is returned when no upstream API key is configured.
var ErrMissingAPIKey = errors.New("upstream API key not configured")

// ChatRequest is a completion request for the upstream model.
type ChatRequest struct {
	Model    string
	Messages []entity.Message
}

// ChatResponse is a complete upstream answer.
type ChatResponse struct {
	Content      string
	Model        string
	FinishReason string
}

// ChatProvider talks to an upstream LLM API.
type ChatProvider interface {
	Name() string
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	// Stream calls onDelta for every chunk of generated text. Returning an
	// error from onDelta aborts the stream with that error.
	Stream(ctx context.Context, req ChatRequest, onDelta func(delta string) error) error
}
