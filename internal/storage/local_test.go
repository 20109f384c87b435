package storage

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalRoundTrip(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	ctx := context.Background()

	content := "file body"
	if err := s.Save(ctx, "a.txt", "text/plain", strings.NewReader(content), int64(len(content))); err != nil {
		t.Fatalf("Save: %v", err)
	}

	r, err := s.Open(ctx, "a.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != content {
		t.Errorf("content: got %q, want %q", got, content)
	}

	if _, ok := s.URL("a.txt"); ok {
		t.Error("local store must not report a public URL")
	}

	if err := s.Remove(ctx, "a.txt"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Open(ctx, "a.txt"); err == nil {
		t.Error("Open after Remove must fail")
	}

	// Removing twice is fine.
	if err := s.Remove(ctx, "a.txt"); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestLocalRejectsPathKeys(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"../escape.txt", "sub/dir.txt", "/abs.txt"} {
		if err := s.Save(ctx, key, "text/plain", strings.NewReader("x"), 1); err == nil {
			t.Errorf("Save accepted key %q", key)
		}
		if _, err := s.Open(ctx, key); err == nil {
			t.Errorf("Open accepted key %q", key)
		}
	}
}
