package app

import (
	"fmt"
	"path/filepath"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// OSFile resolves a host path to the OS-backed hackpadfs and the name of
// the file inside it.
func OSFile(path string) (hackpadfs.FS, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", path, err)
	}
	fsys := osfs.NewFS()
	name, err := fsys.FromOSPath(abs)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return fsys, name, nil
}
