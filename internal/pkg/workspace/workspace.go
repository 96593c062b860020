package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a temporary directory whose lifetime is bound to a single
// request. Cleanup must be called on every exit path.
type Workspace struct {
	dir string
}

// New creates a uniquely named directory under parentDir.
func New(parentDir string) (*Workspace, error) {
	if parentDir == "" {
		parentDir = os.TempDir()
	}
	dir := filepath.Join(parentDir, "fastwrite-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

func (w *Workspace) Dir() string {
	return w.dir
}

// Cleanup removes the workspace directory and everything in it.
// Safe to call more than once.
func (w *Workspace) Cleanup() {
	if w.dir == "" {
		return
	}
	os.RemoveAll(w.dir)
	w.dir = ""
}
