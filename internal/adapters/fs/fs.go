package fs

import (
	iofs "io/fs"
)

// FileSystem is the filesystem surface used by page resolution and
// relocation. Paths use forward slashes; implementations convert them for the
// host OS.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	FileExists(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	Remove(path string) error
}
