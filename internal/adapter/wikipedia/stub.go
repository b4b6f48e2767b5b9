package wikipedia

import (
	"context"

	"github.com/couchcryptid/dry-county-map/internal/domain"
)

// Stub is an Updater that always reports not-implemented. It stands in for
// Client in environments without network access; both satisfy
// domain.Updater, so swapping them never touches the map builder.
type Stub struct{}

// Refresh reports a recoverable not-implemented failure.
func (Stub) Refresh(context.Context) ([]domain.CountyStatus, error) {
	return nil, &domain.FetchError{URL: DefaultURL, Err: domain.ErrNotImplemented}
}
