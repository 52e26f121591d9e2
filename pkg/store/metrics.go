package store

import (
	"io/fs"
	"path/filepath"
)

// DiskUsage returns the total on-disk size of the database directory in
// bytes, best-effort. It walks the directory rather than consulting
// pebble.Metrics so the number matches what an operator sees with du.
func (s *Store) DiskUsage() uint64 {
	if s == nil || s.path == "" {
		return 0
	}
	var total uint64
	_ = filepath.WalkDir(s.path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			total += uint64(fi.Size())
		}
		return nil
	})
	return total
}
