package relay

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/entity"
)

// GeminiProvider talks to the Gemini API.
type GeminiProvider struct {
	key     KeyFunc
	model   string
	baseURL string
	http    *http.Client
}

var _ port.ChatProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a provider. baseURL and httpClient are optional.
func NewGeminiProvider(key KeyFunc, model, baseURL string, httpClient *http.Client) *GeminiProvider {
	return &GeminiProvider{key: key, model: model, baseURL: baseURL, http: httpClient}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) client(ctx context.Context) (*genai.Client, error) {
	key, err := p.key()
	if err != nil {
		return nil, err
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      key,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  p.http,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.baseURL},
	})
}

// contents maps the conversation to Gemini turns. System messages become the
// system instruction.
func (p *GeminiProvider) contents(req port.ChatRequest) (string, []*genai.Content, *genai.GenerateContentConfig) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	var system []string
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case entity.RoleSystem:
			system = append(system, m.Content)
		case entity.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	cfg := &genai.GenerateContentConfig{}
	if len(system) > 0 {
		cfg.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}
	return model, contents, cfg
}

func (p *GeminiProvider) Complete(ctx context.Context, req port.ChatRequest) (*port.ChatResponse, error) {
	client, err := p.client(ctx)
	if err != nil {
		return nil, err
	}

	model, contents, cfg := p.contents(req)
	resp, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	out := &port.ChatResponse{
		Content:      resp.Text(),
		Model:        resp.ModelVersion,
		FinishReason: strings.ToLower(string(resp.Candidates[0].FinishReason)),
	}
	if out.Model == "" {
		out.Model = model
	}
	return out, nil
}

func (p *GeminiProvider) Stream(ctx context.Context, req port.ChatRequest, onDelta func(string) error) error {
	client, err := p.client(ctx)
	if err != nil {
		return err
	}

	model, contents, cfg := p.contents(req)
	for resp, err := range client.Models.GenerateContentStream(ctx, model, contents, cfg) {
		if err != nil {
			return err
		}
		if text := resp.Text(); text != "" {
			if err := onDelta(text); err != nil {
				return err
			}
		}
	}
	return nil
}
