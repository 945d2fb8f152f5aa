package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// Read decodes the snapshot for collection into dest. It reports false when no
// snapshot exists or the stored value is not valid JSON for dest; callers fall
// back to their collection default in that case. Only driver failures surface
// as errors; corrupt data is treated the same as absent data.
func Read(ctx context.Context, s Store, collection string, dest any) (bool, error) {
	raw, found, err := s.Get(ctx, collection)
	if err != nil {
		return false, fmt.Errorf("reading %s snapshot: %w", collection, err)
	}
	if !found || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Write serializes value and replaces the collection's snapshot.
func Write(ctx context.Context, s Store, collection string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", collection, err)
	}
	if err := s.Set(ctx, collection, raw); err != nil {
		return fmt.Errorf("writing %s snapshot: %w", collection, err)
	}
	return nil
}
