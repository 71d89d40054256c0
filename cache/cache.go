// Package cache memoizes decoded vox documents by content digest.
//
// Asset pipelines often decode the same file many times. Cache keys each
// decode by the sha256 digest of the (decompressed) input, so identical
// content is decoded once no matter which path it was read from. Concurrent
// requests for the same digest share a single decode.
//
// A Store adds a second tier: raw input bytes are persisted by digest, so a
// document evicted from memory, or decoded by another process, can be
// rebuilt with Load. See the disk package for a filesystem Store.
//
// Cached documents are shared between callers and must be treated as
// read-only.
package cache

import (
	"container/list"
	_ "crypto/sha256" // registers digest.SHA256
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/singleflight"

	"github.com/meigma/vox"
	"github.com/meigma/vox/internal/source"
)

// DefaultMaxEntries is the entry limit used when none is configured.
const DefaultMaxEntries = 128

// ErrNotFound is returned by Load when neither memory nor the store holds
// the digest.
var ErrNotFound = errors.New("cache: document not found")

// Store persists raw vox bytes by digest.
//
// Implementations must be safe for concurrent use. Get should return false
// for content that does not match dgst.
type Store interface {
	Get(dgst digest.Digest) ([]byte, bool)
	Put(dgst digest.Digest, data []byte) error
}

// Cache is an LRU cache of decoded documents. It is safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[digest.Digest]*list.Element
	lru        *list.List // front is most recently used

	fetchGroup singleflight.Group
	decodeOpts []vox.Option
	srcOpts    source.Options
	store      Store
	logger     *slog.Logger

	hits   atomic.Int64
	misses atomic.Int64

	decode func(data []byte, opts ...vox.Option) (*vox.Document, error)
}

type entry struct {
	dgst digest.Digest
	doc  *vox.Document
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries sets the number of documents kept (default: 128).
// Values <= 0 restore the default.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n <= 0 {
			n = DefaultMaxEntries
		}
		c.maxEntries = n
	}
}

// WithDecodeOptions sets the options used for every decode on a cache miss.
func WithDecodeOptions(opts ...vox.Option) Option {
	return func(c *Cache) {
		c.decodeOpts = append([]vox.Option(nil), opts...)
	}
}

// WithMaxInputSize limits the size of files read by ReadFile, after
// decompression. Zero uses the decoder default.
func WithMaxInputSize(limit uint64) Option {
	return func(c *Cache) {
		c.srcOpts.MaxSize = limit
	}
}

// WithStore persists the input of every successful decode to s and lets
// Load rebuild documents from it.
func WithStore(s Store) Option {
	return func(c *Cache) {
		c.store = s
	}
}

// WithLogger sets a logger for cache activity.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		maxEntries: DefaultMaxEntries,
		entries:    make(map[digest.Digest]*list.Element),
		lru:        list.New(),
		decode:     vox.Decode,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Decode returns the document for data and its digest, decoding on a miss.
func (c *Cache) Decode(data []byte) (*vox.Document, digest.Digest, error) {
	dgst := digest.FromBytes(data)
	doc, err := c.load(dgst, data)
	if err != nil {
		return nil, dgst, err
	}
	return doc, dgst, nil
}

// ReadFile reads path, unwrapping zstd compression, and returns the cached or
// freshly decoded document with the digest of the decompressed bytes.
func (c *Cache) ReadFile(path string) (*vox.Document, digest.Digest, error) {
	data, _, err := source.ReadFile(path, c.srcOpts)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	doc, dgst, err := c.Decode(data)
	if err != nil {
		return nil, dgst, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, dgst, nil
}

func (c *Cache) load(dgst digest.Digest, data []byte) (*vox.Document, error) {
	// Fast path, avoids singleflight overhead.
	if doc, ok := c.Get(dgst); ok {
		return doc, nil
	}

	result, err, shared := c.fetchGroup.Do(dgst.String(), func() (any, error) {
		// Another caller may have stored it between our check and here.
		if doc, ok := c.Get(dgst); ok {
			return doc, nil
		}
		c.misses.Add(1)
		doc, err := c.decode(data, c.decodeOpts...)
		if err != nil {
			return nil, err
		}
		c.put(dgst, doc)
		c.persist(dgst, data)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("shared concurrent decode", slog.String("digest", dgst.String()))
	}

	doc, _ := result.(*vox.Document) //nolint:errcheck // type assertion always succeeds when err is nil
	return doc, nil
}

// Load returns the document for dgst, decoding it from the store when it is
// not held in memory. It returns ErrNotFound if no store is configured or the
// store does not have the digest.
func (c *Cache) Load(dgst digest.Digest) (*vox.Document, error) {
	if doc, ok := c.Get(dgst); ok {
		return doc, nil
	}
	if c.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dgst)
	}
	data, ok := c.store.Get(dgst)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dgst)
	}
	return c.load(dgst, data)
}

func (c *Cache) persist(dgst digest.Digest, data []byte) {
	if c.store == nil {
		return
	}
	if err := c.store.Put(dgst, data); err != nil {
		c.logger.Warn("store put failed",
			slog.String("digest", dgst.String()),
			slog.String("error", err.Error()))
	}
}

// Get returns the cached document for dgst.
func (c *Cache) Get(dgst digest.Digest) (*vox.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[dgst]
	if !ok {
		return nil, false
	}
	c.lru.MoveToFront(el)
	c.hits.Add(1)
	return el.Value.(*entry).doc, true
}

func (c *Cache) put(dgst digest.Digest, doc *vox.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[dgst]; ok {
		el.Value.(*entry).doc = doc
		c.lru.MoveToFront(el)
		return
	}
	c.entries[dgst] = c.lru.PushFront(&entry{dgst: dgst, doc: doc})
	for c.lru.Len() > c.maxEntries {
		oldest := c.lru.Back()
		e := oldest.Value.(*entry)
		c.lru.Remove(oldest)
		delete(c.entries, e.dgst)
		c.logger.Debug("evicted document", slog.String("digest", e.dgst.String()))
	}
}

// Delete removes the document for dgst. Missing entries are a no-op.
func (c *Cache) Delete(dgst digest.Digest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[dgst]; ok {
		c.lru.Remove(el)
		delete(c.entries, dgst)
	}
}

// Purge removes every document.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[digest.Digest]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats reports cache hits and decodes performed on misses.
type Stats struct {
	Hits   int64
	Misses int64
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
