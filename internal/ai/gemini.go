package ai

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"tripplanner/internal/types"
)

// ProviderOptions configures either backend.
type ProviderOptions struct {
	Model       string
	Temperature float32
	// GeminiKey is used by the Gemini API provider.
	GeminiKey string
	// ProjectID and Location are used by the Vertex AI provider.
	ProjectID string
	Location  string
}

// GeminiProvider implements Generator against the Gemini API with an API key.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiProvider(ctx context.Context, opts ProviderOptions) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.GeminiKey))
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}

	model := client.GenerativeModel(opts.Model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(opts.Temperature)

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrapf(types.ErrUpstreamUnavailable, "gemini generate: %v", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.Wrap(types.ErrUpstreamUnavailable, "no response candidates from gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	return text.String(), nil
}
