package bundle

import "testing"

func TestCachePutThenGetRoundTrips(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenCache(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key := Key("x := 1", "python", "0.1.0")
	artifact := CachedArtifact{
		Target:      "python",
		PackVersion: "0.1.0",
		Code:        "x = 1\n",
		Bundle:      NewSingleFile("out.py", "x = 1\n"),
	}
	if err := c.Put(key, artifact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got.Code != artifact.Code {
		t.Fatalf("unexpected code: %q", got.Code)
	}
	if got.Bundle.Files["out.py"] != "x = 1\n" {
		t.Fatalf("unexpected bundle contents: %+v", got.Bundle)
	}
}

func TestCacheGetMissReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenCache(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, ok, err := c.Get(Key("nonexistent", "python", "0.1.0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a cache miss")
	}
}

func TestCacheDifferentTargetsProduceDifferentKeys(t *testing.T) {
	a := Key("x := 1", "python", "0.1.0")
	b := Key("x := 1", "js", "0.1.0")
	if a == b {
		t.Fatal("expected different targets to produce different cache keys")
	}
}

func TestCacheDropAllRemovesEntries(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenCache(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := Key("x := 1", "python", "0.1.0")
	if err := c.Put(key, CachedArtifact{Code: "x = 1\n"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected cache to be empty after DropAll")
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	if err := c.Put("k", CachedArtifact{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, ok, err := c.Get("k")
	if err != nil || ok {
		t.Fatalf("expected nil-cache miss, got ok=%v err=%v", ok, err)
	}
}
