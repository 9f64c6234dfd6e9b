// Package fs holds the file-system adapters: atomic document writes into the
// output directory and the janitor that prunes old reports.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// OutputDir writes generated documents into one directory.
type OutputDir struct {
	dir string
}

// NewOutputDir creates an OutputDir rooted at dir. The directory is created
// on first write.
func NewOutputDir(dir string) *OutputDir {
	return &OutputDir{dir: dir}
}

// Dir returns the directory documents are written to.
func (o *OutputDir) Dir() string {
	return o.dir
}

// Path returns the full path name would be written to.
func (o *OutputDir) Path(name string) string {
	return filepath.Join(o.dir, name)
}

// Write stores data under name atomically (write to temp file, then rename)
// so a reader never sees a half-written document. It returns the final path.
func (o *OutputDir) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid document name %q", name)
	}
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := o.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", tmp, err)
	}
	return path, nil
}
