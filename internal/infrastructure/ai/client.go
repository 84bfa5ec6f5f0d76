// Package ai wraps the model provider SDKs behind a single completion
// interface so the pipeline stages can be tested with fakes.
package ai

import "context"

// CompletionClient sends a single prompt to a language model and
// returns the raw text response.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
