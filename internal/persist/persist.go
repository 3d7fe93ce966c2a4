// Package persist provides the storage drivers the state store saves its
// snapshot through.  A driver moves one opaque JSON document; it knows
// nothing about the booking domain.  Saves are best-effort by contract:
// the store logs and swallows driver errors because the in-memory
// snapshot stays authoritative for the session.
package persist

import (
	"context"
	"errors"
)

// ErrNoData is returned by Load when the driver holds no snapshot yet.
// The store responds by building the seed dataset.
var ErrNoData = errors.New("no snapshot data")

// Driver loads and saves the serialized booking snapshot.
type Driver interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
