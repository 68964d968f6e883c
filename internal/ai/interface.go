package ai

import (
	"context"

	"github.com/pkg/errors"

	"tripplanner/internal/types"
)

// Generator sends a prompt to a text-generation backend and returns the raw model output.
// Implementations do not retry; callers fall back on any error.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the disabled generator used when no provider credentials exist.
var ErrNotConfigured = errors.Wrap(types.ErrUpstreamUnavailable, "generative provider not configured")

type disabledGenerator struct{}

// Disabled returns a Generator that always fails, sending every plan down the fallback path.
func Disabled() Generator {
	return disabledGenerator{}
}

func (disabledGenerator) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
