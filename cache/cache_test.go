package cache

import (
	"testing"
	"time"
)

func initTestData(t *testing.T) {
	if err := InitCache(t.TempDir()); err != nil {
		t.Fatalf("Failed to initialise cache db: %v", err)
	}
	t.Cleanup(func() {
		CacheDb.Close()
		CacheDb = nil
	})

	CachePublishedPosts("hazelvis", []*CachedPost{
		{
			Id:          "b7a6193954f1",
			Title:       "Profiling Go Services",
			Url:         "https://medium.com/@hazelvis/b7a6193954f1",
			PublishedAt: 1700000000000,
			TagIds:      []string{"golang", "profiling"},
		},
		{
			Id:          "2f1c88a0de41",
			Title:       "Pebble As A Local Cache",
			Url:         "https://medium.com/@hazelvis/2f1c88a0de41",
			PublishedAt: 1700100000000,
		},
	})
}

func TestPostCacheExists(t *testing.T) {
	initTestData(t)

	if !PostCacheExists("hazelvis", "b7a6193954f1") {
		t.Error("Expected cached post to exist")
	}
	if PostCacheExists("hazelvis", "ffffffffffff") {
		t.Error("Expected unknown post to not exist in the cache")
	}
	if PostCacheExists("someoneelse", "b7a6193954f1") {
		t.Error("Expected post cached for another user to not exist")
	}
}

func TestGetCachedPost(t *testing.T) {
	initTestData(t)

	post := GetCachedPost("hazelvis", "b7a6193954f1")
	if post == nil {
		t.Fatal("Expected a cached post, got nil")
	}
	if post.Title != "Profiling Go Services" {
		t.Errorf("Expected title %q, got %q", "Profiling Go Services", post.Title)
	}
	if len(post.TagIds) != 2 {
		t.Errorf("Expected 2 tag ids, got %d", len(post.TagIds))
	}

	if post := GetCachedPost("hazelvis", "ffffffffffff"); post != nil {
		t.Errorf("Expected nil for an uncached post, got %+v", post)
	}
}

func TestGetFeedFetchedAt(t *testing.T) {
	initTestData(t)

	fetchedAt := GetFeedFetchedAt("hazelvis")
	if fetchedAt.IsZero() {
		t.Fatal("Expected a feed timestamp after caching posts")
	}
	if time.Since(fetchedAt) > time.Minute {
		t.Errorf("Expected a recent feed timestamp, got %v", fetchedAt)
	}

	if fetchedAt := GetFeedFetchedAt("someoneelse"); !fetchedAt.IsZero() {
		t.Errorf("Expected the zero time for an unknown user, got %v", fetchedAt)
	}
}

func TestResetDb(t *testing.T) {
	initTestData(t)

	if err := CacheDb.ResetDb(); err != nil {
		t.Fatalf("Failed to reset cache db: %v", err)
	}
	if PostCacheExists("hazelvis", "b7a6193954f1") {
		t.Error("Expected the cache to be empty after a reset")
	}
}
