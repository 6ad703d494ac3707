package pipeline

import "context"

// Backend is the single suspension point of the pipeline: one synchronous
// text-generation call, prompt in, raw text out. Any error or timeout is a
// backend failure for that metric only.
type Backend interface {
	Call(ctx context.Context, prompt string) (string, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(ctx context.Context, prompt string) (string, error)

// Call implements Backend.
func (f BackendFunc) Call(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
