// Package system abstracts the filesystem and HTTP client so inputs and outputs can be faked in tests.
package system

import (
	"io/fs"
	"os"
	"path/filepath"
)

type VirtualFS interface {
	fs.FS
}

// WritableVirtualFS is a VirtualFS that generated output can be written to.
type WritableVirtualFS interface {
	VirtualFS
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
}

type FileSystem struct{}

var (
	_ VirtualFS         = (*FileSystem)(nil)
	_ WritableVirtualFS = (*FileSystem)(nil)
)

func (fs *FileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// WriteFile writes data to name, creating any missing parent directories.
func (fs *FileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(name, data, perm)
}

func (fs *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
