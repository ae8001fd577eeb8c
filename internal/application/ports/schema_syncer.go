package ports

import "context"

// SchemaSyncer accepts fire-and-forget schema sync requests and applies
// them from a background worker.
type SchemaSyncer interface {
	Trigger() bool
	SyncWorker(ctx context.Context)
}
