package kv

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskStore is a Store backed by a diskv directory, one file per key.
// It mirrors the browser's localStorage layout on the filesystem.
type DiskStore struct {
	d *diskv.Diskv
}

// OpenDisk opens (or creates) a diskv store rooted at the given
// directory.
func OpenDisk(basePath string) (*DiskStore, error) {
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	d := diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
	return &DiskStore{d: d}, nil
}

func (s *DiskStore) Get(key string) (string, bool, error) {
	if !s.d.Has(key) {
		return "", false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return string(val), true, nil
}

func (s *DiskStore) Set(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *DiskStore) Close() error {
	return nil
}
