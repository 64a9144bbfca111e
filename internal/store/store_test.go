package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_New_InvalidPath(t *testing.T) {
	_, err := New("/nonexistent/path/test.db")
	if err == nil {
		t.Error("expected error for invalid path")
	}
}

func TestStore_SaveAndLastPush(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := Push{
		ID:           "push-1",
		InputFile:    "note.md",
		DocID:        "doc-1",
		Title:        "New Note",
		RequestCount: 4,
		FooterChars:  8,
		ContentHash:  "aaa",
		CreatedAt:    time.Now().Add(-time.Hour),
	}
	second := Push{
		ID:           "push-2",
		InputFile:    "note.md",
		DocID:        "doc-1",
		Title:        "New Note",
		RequestCount: 5,
		ContentHash:  "bbb",
		CreatedAt:    time.Now(),
	}

	if err := s.SavePush(ctx, first); err != nil {
		t.Fatalf("SavePush failed: %v", err)
	}
	if err := s.SavePush(ctx, second); err != nil {
		t.Fatalf("SavePush failed: %v", err)
	}

	last, found, err := s.LastPush(ctx, "note.md")
	if err != nil {
		t.Fatalf("LastPush failed: %v", err)
	}
	if !found {
		t.Fatal("expected a push to be found")
	}
	if last.ID != "push-2" || last.ContentHash != "bbb" {
		t.Errorf("expected most recent push, got %+v", last)
	}
}

func TestStore_LastPush_Empty(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.LastPush(context.Background(), "unknown.md")
	if err != nil {
		t.Fatalf("LastPush failed: %v", err)
	}
	if found {
		t.Error("expected no push for unknown file")
	}
}

func TestStore_ListPushes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, file := range []string{"a.md", "b.md"} {
		err := s.SavePush(ctx, Push{
			ID:           file,
			InputFile:    file,
			DocID:        "doc",
			RequestCount: i + 1,
			ContentHash:  "h",
			CreatedAt:    time.Now().Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SavePush failed: %v", err)
		}
	}

	pushes, err := s.ListPushes(ctx)
	if err != nil {
		t.Fatalf("ListPushes failed: %v", err)
	}
	if len(pushes) != 2 {
		t.Fatalf("expected 2 pushes, got %d", len(pushes))
	}
	if pushes[0].InputFile != "b.md" {
		t.Errorf("expected newest first, got %q", pushes[0].InputFile)
	}
}

func TestStore_GetStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.SavePush(ctx, Push{ID: "1", InputFile: "a.md", DocID: "d1", RequestCount: 3, ContentHash: "h"})
	_ = s.SavePush(ctx, Push{ID: "2", InputFile: "a.md", DocID: "d1", RequestCount: 4, ContentHash: "h"})
	_ = s.SavePush(ctx, Push{ID: "3", InputFile: "b.md", DocID: "d2", RequestCount: 1, ContentHash: "h"})

	stats, err := s.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalPushes != 3 || stats.DistinctFiles != 2 || stats.DistinctDocs != 2 || stats.TotalRequests != 8 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.SavePush(ctx, Push{ID: "1", InputFile: "a.md", DocID: "d", RequestCount: 1, ContentHash: "h"})

	n, err := s.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}

	pushes, err := s.ListPushes(ctx)
	if err != nil {
		t.Fatalf("ListPushes failed: %v", err)
	}
	if len(pushes) != 0 {
		t.Errorf("expected empty history, got %d entries", len(pushes))
	}
}

func TestContentHash_Normalization(t *testing.T) {
	// Trailing whitespace must not change the fingerprint.
	if ContentHash("# Title\n") != ContentHash("# Title\n\n\n") {
		t.Error("expected trailing whitespace to be ignored")
	}
	// NFC vs NFD spellings of the same text hash identically.
	if ContentHash("caf\u00e9") != ContentHash("cafe\u0301") {
		t.Error("expected unicode normalization before hashing")
	}
	if ContentHash("a") == ContentHash("b") {
		t.Error("expected different content to hash differently")
	}
}
