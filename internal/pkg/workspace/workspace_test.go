package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewCreatesDirUnderParent(t *testing.T) {
	parent := t.TempDir()

	ws, err := New(parent)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer ws.Cleanup()

	if filepath.Dir(ws.Dir()) != parent {
		t.Fatalf("expected workspace under %s, got %s", parent, ws.Dir())
	}
	if !strings.HasPrefix(filepath.Base(ws.Dir()), "fastwrite-") {
		t.Fatalf("unexpected workspace name: %s", ws.Dir())
	}
	if fi, err := os.Stat(ws.Dir()); err != nil || !fi.IsDir() {
		t.Fatalf("expected directory, stat err=%v", err)
	}
}

func TestCleanupRemovesDir(t *testing.T) {
	ws, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	dir := ws.Dir()

	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write file error: %v", err)
	}

	ws.Cleanup()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected workspace removed, stat err=%v", err)
	}

	// Second call must be a no-op.
	ws.Cleanup()
}
