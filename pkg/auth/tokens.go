package auth

import "context"

// TokenGenerator abstracts session token creation (e.g., a signed cookie
// value). It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
