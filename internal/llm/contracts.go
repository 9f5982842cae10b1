package llm

import "context"

// Completer is the single-round-trip LLM collaborator the extraction
// pipeline depends on: prompt in, raw text out. Implementations must return
// a *CallError for transport and response-shape failures so callers can
// distinguish collaborator trouble from parse trouble.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
