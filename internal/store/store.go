// Package store persists solved Matchings, keyed by request ID, behind a
// common Store interface with an in-memory and a Postgres-backed
// implementation.
package store

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlath/kwok"
)

// ErrNotFound is returned by GetMatching when no row exists for the given
// request ID.
var ErrNotFound = errors.New("store: matching not found")

// Store persists kwok.Matching results keyed by a caller-supplied request
// ID string (minted by internal/service as a uuid).
type Store interface {
	SaveMatching(ctx context.Context, requestID string, m kwok.Matching) error
	GetMatching(ctx context.Context, requestID string) (kwok.Matching, error)
}
