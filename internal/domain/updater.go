package domain

import "context"

// Updater refreshes county statuses from a remote reference source.
// Implementations are best-effort: a failed refresh returns a *FetchError
// and the caller proceeds with the registry it already has.
type Updater interface {
	// Refresh fetches and parses the remote source, returning the county
	// entries to merge into the registry (last write wins per county).
	Refresh(ctx context.Context) ([]CountyStatus, error)
}
