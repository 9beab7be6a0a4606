package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/easeaico/project-texas/internal/types"
)

// KVStateRepo implements mood.StateRepo on any KV by storing the record as
// one JSON document per character key. The KV version is authoritative for
// concurrency; the document carries the schema version tag.
type KVStateRepo struct {
	kv  KV
	key string
}

// NewKVStateRepo returns a repo bound to one character key.
func NewKVStateRepo(kv KV, key string) *KVStateRepo {
	return &KVStateRepo{kv: kv, key: key}
}

// Get fetches the record, returning neutral defaults for a key that has
// never been written. The defaults carry version 0 so the first Save
// creates the key.
func (r *KVStateRepo) Get(ctx context.Context) (types.StateRecord, error) {
	value, version, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, ErrKeyNotFound) {
		return types.NewStateRecord(time.Now()), nil
	}
	if err != nil {
		return types.StateRecord{}, fmt.Errorf("failed to read state record: %w", err)
	}

	var rec types.StateRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return types.StateRecord{}, fmt.Errorf("failed to decode state record: %w", err)
	}
	rec.Version = version
	return rec, nil
}

// Save replaces the document if the version read is still current.
func (r *KVStateRepo) Save(ctx context.Context, rec types.StateRecord) error {
	expect := rec.Version
	rec.Version = expect + 1
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode state record: %w", err)
	}
	return r.kv.Replace(ctx, r.key, value, expect)
}
