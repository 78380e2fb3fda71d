package llm

import "context"

// Invoker is the interface the pipeline depends on: one prompt in, the
// model's raw reply text out. Implementations own transport, model choice,
// and decoding policy.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)

	// Model names the backing model, for diagnostics only.
	Model() string
}
