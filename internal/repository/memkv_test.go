package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/easeaico/project-texas/internal/mood"
	"github.com/easeaico/project-texas/internal/types"
)

func TestMemoryKVGetMissingKey(t *testing.T) {
	kv := NewMemoryKV()
	_, _, err := kv.Get(context.Background(), "texas")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestMemoryKVReplaceSemantics(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	// First write must expect version 0.
	if err := kv.Replace(ctx, "texas", []byte("a"), 1); !errors.Is(err, mood.ErrStaleRecord) {
		t.Fatalf("expected stale error creating with nonzero expect, got %v", err)
	}
	if err := kv.Replace(ctx, "texas", []byte("a"), 0); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	value, version, err := kv.Get(ctx, "texas")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(value) != "a" || version != 1 {
		t.Fatalf("unexpected entry: value=%q version=%d", value, version)
	}

	// Replace against the live version advances it; stale expects fail.
	if err := kv.Replace(ctx, "texas", []byte("b"), 1); err != nil {
		t.Fatalf("expected replace to succeed, got %v", err)
	}
	if err := kv.Replace(ctx, "texas", []byte("c"), 1); !errors.Is(err, mood.ErrStaleRecord) {
		t.Fatalf("expected stale error on old version, got %v", err)
	}

	value, version, err = kv.Get(ctx, "texas")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(value) != "b" || version != 2 {
		t.Fatalf("lost update: value=%q version=%d", value, version)
	}
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	input := []byte("abc")
	if err := kv.Replace(ctx, "texas", input, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	input[0] = 'z'

	value, _, err := kv.Get(ctx, "texas")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(value) != "abc" {
		t.Fatalf("stored value aliased caller buffer: %q", value)
	}
}

func TestKVStateRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewKVStateRepo(NewMemoryKV(), "texas")

	// A never-written key yields neutral defaults at version 0.
	rec, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Version != 0 || rec.Biology.Stamina != 100 {
		t.Fatalf("unexpected defaults: %+v", rec)
	}

	rec.Mood.Pleasure = 4.5
	rec.Desire.Lust = 33
	release := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	rec.Biology.LastReleaseTime = &release

	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Version != 1 {
		t.Fatalf("expected version 1 after first save, got %d", got.Version)
	}
	if got.Mood.Pleasure != 4.5 || got.Desire.Lust != 33 {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.Biology.LastReleaseTime == nil || !got.Biology.LastReleaseTime.Equal(release) {
		t.Fatalf("round trip lost release time: %+v", got.Biology)
	}
}

func TestKVStateRepoRejectsConcurrentWriter(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewKVStateRepo(kv, "texas")

	first, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second := first

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// The second writer still holds version 0; its save must not clobber.
	if err := repo.Save(ctx, second); !errors.Is(err, mood.ErrStaleRecord) {
		t.Fatalf("expected stale error, got %v", err)
	}
}

func TestKVStateRepoIsolatesCharacterKeys(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	texas := NewKVStateRepo(kv, "texas")
	lappland := NewKVStateRepo(kv, "lappland")

	rec := types.NewStateRecord(time.Now())
	rec.Desire.Lust = 77
	if err := texas.Save(ctx, rec); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	other, err := lappland.Get(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if other.Desire.Lust != 0 {
		t.Fatalf("state leaked across character keys: %+v", other)
	}
}
