package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.FromSlash(path))
}

func (fs *OSFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return os.ReadDir(filepath.FromSlash(path))
}

func (fs *OSFileSystem) FileExists(path string) bool {
	_, err := os.Stat(filepath.FromSlash(path))
	return err == nil
}

func (fs *OSFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return os.WriteFile(filepath.FromSlash(path), data, perm)
}

func (fs *OSFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return os.MkdirAll(filepath.FromSlash(path), perm)
}

func (fs *OSFileSystem) Remove(path string) error {
	return os.Remove(filepath.FromSlash(path))
}

// WalkDir walks root and reports paths with forward slashes.
func (fs *OSFileSystem) WalkDir(root string, fn iofs.WalkDirFunc) error {
	return filepath.WalkDir(filepath.FromSlash(root), func(path string, d iofs.DirEntry, err error) error {
		return fn(filepath.ToSlash(path), d, err)
	})
}
