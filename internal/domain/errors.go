package domain

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is the cause reported by stub updaters.
var ErrNotImplemented = errors.New("remote update not implemented")

// FetchError reports a failed remote registry refresh. It is recoverable:
// the caller keeps the registry as loaded and continues the run.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("fetch remote registry: %v", e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MismatchError reports that too many geometry features resolved to no
// known county. A handful of unresolved features render in the Unknown
// bucket; a large fraction means the registry and the boundary file
// disagree about the world, which is treated as fatal misconfiguration.
type MismatchError struct {
	Unresolved int
	Total      int
	Threshold  float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("geometry mismatch: %d of %d features unresolved (threshold %.0f%%)",
		e.Unresolved, e.Total, e.Threshold*100)
}
