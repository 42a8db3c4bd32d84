package resume

import "errors"

// Pipeline errors surfaced to the request boundary.
var (
	ErrDocumentUnreadable = errors.New("document unreadable")
	ErrPersistenceFailed  = errors.New("persistence failed")
	ErrStoreUnavailable   = errors.New("profile store unavailable")
	ErrProfileNotFound    = errors.New("profile not found")
)
