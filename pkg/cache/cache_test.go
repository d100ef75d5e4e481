package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k1", []byte("geometry"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v), want hit", ok, err)
	}
	if string(data) != "geometry" {
		t.Errorf("Get = %q, want %q", data, "geometry")
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	_, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if ok {
		t.Error("unexpected hit for absent key")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "brief", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "brief")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if ok {
		t.Error("expired entry served")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted entry still present")
	}
	// Deleting a missing key is fine.
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestNullCacheNeverHits(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache returned a hit")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	r1 := k.ResultKey("abc")
	r2 := k.ResultKey("abc")
	if r1 != r2 {
		t.Error("identical inputs yield different result keys")
	}
	if r1 == k.ResultKey("abd") {
		t.Error("different inputs collide")
	}
	if !strings.HasPrefix(r1, "result:") {
		t.Errorf("result key %q missing class prefix", r1)
	}

	a1 := k.ArtifactKey("id1", "svg", 2.0)
	if a1 == k.ArtifactKey("id1", "png", 2.0) {
		t.Error("format not part of artifact key")
	}
	if a1 == k.ArtifactKey("id1", "svg", 1.0) {
		t.Error("scale not part of artifact key")
	}
	if !strings.HasPrefix(a1, "artifact:") {
		t.Errorf("artifact key %q missing class prefix", a1)
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "tenant:42:")

	if got := scoped.ResultKey("abc"); got != "tenant:42:"+base.ResultKey("abc") {
		t.Errorf("scoped key %q missing prefix", got)
	}
}

func TestHashStable(t *testing.T) {
	h := Hash([]byte("payload"))
	if len(h) != 64 {
		t.Errorf("hash length = %d, want 64", len(h))
	}
	if h != Hash([]byte("payload")) {
		t.Error("hash not stable")
	}
}
