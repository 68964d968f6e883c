package ai

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"tripplanner/internal/types"
)

// VertexProvider implements Generator against Vertex AI using application-default credentials.
type VertexProvider struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func NewVertexProvider(ctx context.Context, opts ProviderOptions) (*VertexProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  opts.ProjectID,
		Location: opts.Location,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create vertex client")
	}
	return &VertexProvider{
		client: client,
		model:  opts.Model,
		config: &genai.GenerateContentConfig{
			Temperature:      genai.Ptr(opts.Temperature),
			ResponseMIMEType: "application/json",
		},
	}, nil
}

func (p *VertexProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), p.config)
	if err != nil {
		return "", errors.Wrapf(types.ErrUpstreamUnavailable, "vertex generate: %v", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.Wrap(types.ErrUpstreamUnavailable, "empty response from vertex")
	}
	return text, nil
}
