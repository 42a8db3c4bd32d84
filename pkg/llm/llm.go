package llm

import (
	"context"
	"errors"
)

// Generation collaborator errors shared by every pipeline.
var (
	// ErrUnavailable covers upstream outages, timeouts and a missing client.
	ErrUnavailable = errors.New("generation unavailable")
	// ErrMalformed covers replies that do not satisfy their schema contract
	// even after coercion.
	ErrMalformed = errors.New("generation malformed")
)

// Generator is a minimal abstraction for schema-constrained JSON generation.
// It intentionally hides concrete providers to preserve dependency direction.
// Implementations return the raw JSON text of the model reply; callers are
// responsible for validating it against their contract.
type Generator interface {
	GenerateJSON(ctx context.Context, instruction, input string) (string, error)
}
