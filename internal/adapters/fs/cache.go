package fs

import (
	iofs "io/fs"
	"path"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 256

// CachingFileSystem keeps recently read files in memory. Writes and removals
// through it evict the affected path; changes made behind its back must be
// reported with Invalidate.
type CachingFileSystem struct {
	FileSystem
	cache *lru.Cache[string, []byte]
}

func NewCachingFileSystem(inner FileSystem, size int) (*CachingFileSystem, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &CachingFileSystem{FileSystem: inner, cache: cache}, nil
}

func (c *CachingFileSystem) ReadFile(p string) ([]byte, error) {
	key := path.Clean(p)
	if data, ok := c.cache.Get(key); ok {
		return data, nil
	}
	data, err := c.FileSystem.ReadFile(p)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, data)
	return data, nil
}

func (c *CachingFileSystem) WriteFile(p string, data []byte, perm iofs.FileMode) error {
	c.Invalidate(p)
	return c.FileSystem.WriteFile(p, data, perm)
}

func (c *CachingFileSystem) Remove(p string) error {
	c.Invalidate(p)
	return c.FileSystem.Remove(p)
}

func (c *CachingFileSystem) Invalidate(p string) {
	c.cache.Remove(path.Clean(p))
}

func (c *CachingFileSystem) Purge() {
	c.cache.Purge()
}

func (c *CachingFileSystem) Len() int {
	return c.cache.Len()
}
