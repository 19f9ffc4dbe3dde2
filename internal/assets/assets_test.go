package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPutWritesFileAndReturnsURLUnderPrefix(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "/static/images")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path, err := s.Put([]byte("fake png bytes"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(path, "/static/images/") || !strings.HasSuffix(path, ".png") {
		t.Errorf("path = %q, want /static/images/<name>.png", path)
	}

	name := strings.TrimSuffix(strings.TrimPrefix(path, "/static/images/"), ".png")
	full := filepath.Join(dir, name+".png")
	data, err := os.ReadFile(full)
	if err != nil {
		t.Fatalf("expected file at %s: %v", full, err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("file contents mismatch")
	}
}

func TestPutGeneratesDistinctNames(t *testing.T) {
	dir := t.TempDir()
	s, _ := New(dir, "/static/images")

	a, err := s.Put([]byte("one"))
	if err != nil {
		t.Fatalf("Put a: %v", err)
	}
	b, err := s.Put([]byte("two"))
	if err != nil {
		t.Fatalf("Put b: %v", err)
	}
	if a == b {
		t.Errorf("expected distinct paths, got %q twice", a)
	}
}
