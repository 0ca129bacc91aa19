package fallback

import (
	"context"
	"encoding/json"
)

// SnapshotRecord is one record of a mirrored collection.
type SnapshotRecord struct {
	ID   int64
	Body json.RawMessage
}

// Snapshot is the durable form of a collection. Records keep collection
// order; NextID preserves the ID counter so deleted IDs are never reused.
type Snapshot struct {
	NextID  int64
	Records []SnapshotRecord
}

// Mirror persists collections across restarts.
type Mirror interface {
	// Load returns the stored snapshot of resource, or nil when none exists.
	Load(ctx context.Context, resource string) (*Snapshot, error)
	// Save replaces the stored snapshot of resource.
	Save(ctx context.Context, resource string, snap Snapshot) error
}
