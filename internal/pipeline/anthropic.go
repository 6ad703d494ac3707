package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/greenlens/esg-cli/pkg/anthropic"
)

// AnthropicBackend adapts the Anthropic client to the Backend interface with
// client-side rate limiting. The limiter wait respects the call context, so
// a per-metric timeout still bounds queue time plus API time.
type AnthropicBackend struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	limiter   *rate.Limiter
}

// NewAnthropicBackend builds a rate-limited backend. ratePerS <= 0 disables
// throttling.
func NewAnthropicBackend(client anthropic.Client, model string, maxTokens int64, ratePerS float64, burst int) *AnthropicBackend {
	limit := rate.Inf
	if ratePerS > 0 {
		limit = rate.Limit(ratePerS)
	}
	if burst <= 0 {
		burst = 1
	}
	return &AnthropicBackend{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		limiter:   rate.NewLimiter(limit, burst),
	}
}

func (b *AnthropicBackend) Call(ctx context.Context, prompt string) (string, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "backend: rate limit wait")
	}

	resp, err := b.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     b.model,
		MaxTokens: b.maxTokens,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
