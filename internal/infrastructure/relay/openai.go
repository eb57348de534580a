package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/entity"
)

// KeyFunc returns the API key at request time so that a key added while the
// relay runs is picked up.
type KeyFunc func() (string, error)

// OpenAIProvider talks to the OpenAI chat completions API or any compatible
// endpoint set through the base URL.
type OpenAIProvider struct {
	key     KeyFunc
	model   string
	baseURL string
	http    *http.Client
}

var _ port.ChatProvider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a provider. baseURL and httpClient are optional.
func NewOpenAIProvider(key KeyFunc, model, baseURL string, httpClient *http.Client) *OpenAIProvider {
	return &OpenAIProvider{key: key, model: model, baseURL: baseURL, http: httpClient}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) client() (openai.Client, error) {
	key, err := p.key()
	if err != nil {
		return openai.Client{}, err
	}
	opts := []option.RequestOption{option.WithAPIKey(key)}
	if p.baseURL != "" {
		opts = append(opts, option.WithBaseURL(p.baseURL))
	}
	if p.http != nil {
		opts = append(opts, option.WithHTTPClient(p.http))
	}
	return openai.NewClient(opts...), nil
}

func (p *OpenAIProvider) params(req port.ChatRequest) openai.ChatCompletionNewParams {
	model := req.Model
	if model == "" {
		model = p.model
	}
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case entity.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case entity.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	return openai.ChatCompletionNewParams{Model: model, Messages: msgs}
}

func (p *OpenAIProvider) Complete(ctx context.Context, req port.ChatRequest) (*port.ChatResponse, error) {
	client, err := p.client()
	if err != nil {
		return nil, err
	}

	resp, err := client.Chat.Completions.New(ctx, p.params(req))
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}
	choice := resp.Choices[0]
	return &port.ChatResponse{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: choice.FinishReason,
	}, nil
}

func (p *OpenAIProvider) Stream(ctx context.Context, req port.ChatRequest, onDelta func(string) error) error {
	client, err := p.client()
	if err != nil {
		return err
	}

	stream := client.Chat.Completions.NewStreaming(ctx, p.params(req))
	defer func() { _ = stream.Close() }()

	for stream.Next() {
		for _, choice := range stream.Current().Choices {
			if choice.Delta.Content == "" {
				continue
			}
			if err := onDelta(choice.Delta.Content); err != nil {
				return err
			}
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("stream interrupted: %w", err)
	}
	return nil
}
