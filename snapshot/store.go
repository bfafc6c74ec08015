// Package snapshot persists a fit's results as an opaque blob, so a
// caller can archive or transfer a completed clustering without rerunning
// it. Store mirrors vecgo's blobstore.Store contract, simplified from
// vecgo's byte-range GetRange/PutRange object API to whole-blob Put/Get:
// a snapshot is always written and read in one shot.
package snapshot

import "context"

// Store persists and retrieves snapshot blobs by key.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
