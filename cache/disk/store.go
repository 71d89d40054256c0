// Package disk provides a filesystem cache.Store for vox file contents.
//
// Files are laid out content-addressed under the root directory:
//
//	<root>/<algorithm>/<first N hex chars>/<encoded digest>
//
// Writes go through a temp file and rename, so readers never observe a
// partial entry.
package disk

import (
	_ "crypto/sha256" // registers digest.SHA256
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/opencontainers/go-digest"
)

const (
	defaultShardPrefixLen = 2
	defaultDirPerm        = 0o700
	tempPattern           = ".tmp-*"
)

// Store implements cache.Store on the local filesystem.
type Store struct {
	dir            string
	shardPrefixLen int
	dirPerm        os.FileMode
	maxBytes       int64
	logger         *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithShardPrefixLen sets the number of hex characters used for sharding.
// Use 0 to disable sharding. Defaults to 2.
func WithShardPrefixLen(n int) Option {
	return func(s *Store) {
		s.shardPrefixLen = n
	}
}

// WithDirPerm sets the permissions of directories created by the store.
func WithDirPerm(mode os.FileMode) Option {
	return func(s *Store) {
		s.dirPerm = mode
	}
}

// WithMaxBytes bounds the total size of stored files. After each Put the
// least recently used files are removed until the store fits. Zero disables
// the bound (default).
func WithMaxBytes(n int64) Option {
	return func(s *Store) {
		s.maxBytes = n
	}
}

// WithLogger sets a logger for pruning activity.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store dir is empty")
	}
	s := &Store{
		dir:            dir,
		shardPrefixLen: defaultShardPrefixLen,
		dirPerm:        defaultDirPerm,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.shardPrefixLen < 0 {
		return nil, errors.New("shard prefix length must be >= 0")
	}
	if s.maxBytes < 0 {
		return nil, errors.New("max bytes must be >= 0")
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the bytes stored for dgst. Entries whose content no longer
// matches the digest are removed and reported as missing.
func (s *Store) Get(dgst digest.Digest) ([]byte, bool) {
	path, err := s.path(dgst)
	if err != nil {
		return nil, false
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from a validated digest
	if err != nil {
		return nil, false
	}

	verifier := dgst.Verifier()
	_, _ = verifier.Write(data) //nolint:errcheck // digest writers never fail
	if !verifier.Verified() {
		s.logger.Warn("removing corrupt entry", slog.String("digest", dgst.String()))
		_ = os.Remove(path)
		return nil, false
	}

	// Touch for LRU pruning. Failure only affects eviction order.
	now := time.Now()
	_ = os.Chtimes(path, now, now)
	return data, true
}

// Put stores data under dgst. Existing entries are left untouched.
func (s *Store) Put(dgst digest.Digest, data []byte) error {
	path, err := s.path(dgst)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		// A concurrent writer may have won the race with identical content.
		if _, statErr := os.Stat(path); statErr == nil {
			return nil
		}
		return err
	}

	if s.maxBytes > 0 {
		freed, remaining, err := s.prune(s.maxBytes)
		if err != nil {
			return err
		}
		if freed > 0 {
			s.logger.Debug("pruned store",
				slog.Int64("freed", freed),
				slog.Int64("remaining", remaining))
		}
	}
	return nil
}

// Has reports whether an entry exists for dgst without reading it.
func (s *Store) Has(dgst digest.Digest) bool {
	path, err := s.path(dgst)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Delete removes the entry for dgst. Missing entries are a no-op.
func (s *Store) Delete(dgst digest.Digest) error {
	path, err := s.path(dgst)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Size returns the total size of stored entries in bytes.
func (s *Store) Size() (int64, error) {
	var total int64
	err := s.walk(func(e entry) { total += e.size })
	return total, err
}

// Prune removes least recently used entries until at most target bytes
// remain, and returns the number of bytes freed.
func (s *Store) Prune(target int64) (int64, error) {
	freed, _, err := s.prune(target)
	return freed, err
}

func (s *Store) path(dgst digest.Digest) (string, error) {
	if err := dgst.Validate(); err != nil {
		return "", err
	}
	encoded := dgst.Encoded()
	algDir := filepath.Join(s.dir, dgst.Algorithm().String())
	if s.shardPrefixLen <= 0 {
		return filepath.Join(algDir, encoded), nil
	}
	prefixLen := min(s.shardPrefixLen, len(encoded))
	return filepath.Join(algDir, encoded[:prefixLen], encoded), nil
}
