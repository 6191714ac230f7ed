package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	store.now = func() time.Time {
		return time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)
	}
	return store
}

func TestStore_Save_NamesAndContent(t *testing.T) {
	store := newTestStore(t)

	refs, err := store.Save("alice", []Upload{
		{Filename: "front.jpg", Content: strings.NewReader("jpeg-bytes")},
		{Filename: "tour.MP4", Content: strings.NewReader("mp4-bytes")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"photo_alice_20260831143005_0.jpg",
		"video_alice_20260831143005_1.mp4",
	}
	if len(refs) != len(want) {
		t.Fatalf("expected %d refs, got %d", len(want), len(refs))
	}
	for i, ref := range refs {
		if ref != want[i] {
			t.Errorf("ref %d: expected %q, got %q", i, want[i], ref)
		}
		raw, err := os.ReadFile(filepath.Join(store.dir, ref))
		if err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
		if len(raw) == 0 {
			t.Errorf("stored file %s is empty", ref)
		}
	}
}

func TestStore_Save_NoUploads(t *testing.T) {
	store := newTestStore(t)

	refs, err := store.Save("alice", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refs != nil {
		t.Errorf("expected no refs, got %v", refs)
	}
}

func TestStore_Save_UnknownExtension(t *testing.T) {
	store := newTestStore(t)

	refs, err := store.Save("bob", []Upload{
		{Filename: "blob", Content: strings.NewReader("data")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refs[0] != "photo_bob_20260831143005_0.bin" {
		t.Errorf("unexpected ref %q", refs[0])
	}
}
