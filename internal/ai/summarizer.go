package ai

import "context"

// Summarizer is the optional text-generation capability used to rewrite
// candidate summaries. Implementations must be safe to call sequentially and
// may fail; callers keep the deterministic summary on any error.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}
