package resume

import (
	"context"

	"github.com/google/uuid"
)

// ProfileStore is the port to the external candidate store. Both operations
// map onto stored procedures owned by the store, not by this service.
type ProfileStore interface {
	// UpsertFullResume persists a full extraction keyed by the caller.
	UpsertFullResume(ctx context.Context, userID uuid.UUID, data []byte) error
	// GetFullCandidateProfile returns the stored profile snapshot as JSON.
	// Returns ErrProfileNotFound when the store has no data for the caller.
	GetFullCandidateProfile(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
