package disk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

type entry struct {
	path    string
	size    int64
	modTime time.Time
}

// walk visits every committed entry. In-flight temp files are skipped.
func (s *Store) walk(fn func(entry)) error {
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		fn(entry{path: path, size: info.Size(), modTime: info.ModTime()})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// prune removes the oldest entries by modification time until at most
// target bytes remain.
func (s *Store) prune(target int64) (freed, remaining int64, err error) {
	target = max(target, 0)

	var entries []entry
	if err := s.walk(func(e entry) {
		entries = append(entries, e)
		remaining += e.size
	}); err != nil {
		return 0, 0, err
	}
	if remaining <= target {
		return 0, remaining, nil
	}

	slices.SortFunc(entries, func(a, b entry) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return strings.Compare(a.path, b.path)
	})

	for _, e := range entries {
		if remaining <= target {
			break
		}
		if err := os.Remove(e.path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return freed, remaining, err
		}
		remaining -= e.size
		freed += e.size
	}
	return freed, remaining, nil
}
