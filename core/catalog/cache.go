package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// errSuperseded marks a load overtaken by an invalidation while it was
// in flight. Its snapshot predates the mutation and must not be served.
var errSuperseded = errors.New("catalog load superseded by invalidation")

// DefaultTTL is the cache window applied when no TTL is configured.
const DefaultTTL = 60 * time.Second

// Cache entry keys. Per-kind entries carry []Item, index entries *Index,
// plus one combined and one metadata entry.
const (
	keyAll      = "all"
	keyMeta     = "meta"
	keyIndexAll = "index:all"
	keyLoad     = "load" // singleflight key, never stored
)

func kindKey(kind Kind) string  { return "kind:" + string(kind) }
func indexKey(kind Kind) string { return "index:" + string(kind) }

// Cache is the TTL read-through cache in front of a catalog Store.
//
// A read that misses triggers one full store load; concurrent misses
// await the same in-flight load instead of issuing duplicates. Entries
// expire after the TTL, and mutations invalidate them synchronously via
// Invalidate before the mutation returns, so post-mutation reads never
// see pre-mutation data even inside the TTL window.
type Cache struct {
	store   Store
	logger  *zap.Logger
	entries *gocache.Cache
	sf      singleflight.Group

	// mu guards gen, which fences loads against invalidations: a load
	// started before an invalidation must not repopulate after it.
	mu  sync.Mutex
	gen uint64
}

// NewCache creates a cache over the given store. A non-positive ttl
// falls back to DefaultTTL.
func NewCache(store Store, logger *zap.Logger, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		store:   store,
		logger:  logger,
		entries: gocache.New(ttl, 2*ttl),
	}
}

// GetKind returns the catalog slice of one kind, loading from the store
// if the entry is missing or expired. A failed load degrades to an empty
// slice; it is logged and never cached.
func (c *Cache) GetKind(ctx context.Context, kind Kind) []Item {
	if v, ok := c.entries.Get(kindKey(kind)); ok {
		return v.([]Item)
	}
	snap := c.load(ctx)
	if snap == nil {
		return nil
	}
	return snap.Slice(kind)
}

// GetAll returns the concatenation of all three slices.
func (c *Cache) GetAll(ctx context.Context) []Item {
	if v, ok := c.entries.Get(keyAll); ok {
		return v.([]Item)
	}
	snap := c.load(ctx)
	if snap == nil {
		return nil
	}
	return snap.All()
}

// Meta returns the catalog skill metadata.
func (c *Cache) Meta(ctx context.Context) Meta {
	if v, ok := c.entries.Get(keyMeta); ok {
		return v.(Meta)
	}
	snap := c.load(ctx)
	if snap == nil {
		return Meta{}
	}
	return snap.Meta
}

// IndexFor returns the lookup index over one kind's slice.
func (c *Cache) IndexFor(ctx context.Context, kind Kind) *Index {
	if v, ok := c.entries.Get(indexKey(kind)); ok {
		return v.(*Index)
	}
	snap := c.load(ctx)
	if snap == nil {
		return NewIndex(nil)
	}
	return NewIndex(snap.Slice(kind))
}

// Index returns the lookup index over the whole catalog. This is what
// the resolver queries repeatedly.
func (c *Cache) Index(ctx context.Context) *Index {
	if v, ok := c.entries.Get(keyIndexAll); ok {
		return v.(*Index)
	}
	snap := c.load(ctx)
	if snap == nil {
		return NewIndex(nil)
	}
	return NewIndex(snap.All())
}

// Invalidate drops the entry for one kind together with the combined and
// metadata entries, which depend on every kind. An in-flight load is
// forgotten so later misses start a fresh one instead of joining it.
func (c *Cache) Invalidate(kind Kind) {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()
	c.sf.Forget(keyLoad)
	c.entries.Delete(kindKey(kind))
	c.entries.Delete(indexKey(kind))
	c.entries.Delete(keyAll)
	c.entries.Delete(keyIndexAll)
	c.entries.Delete(keyMeta)
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()
	c.sf.Forget(keyLoad)
	c.entries.Flush()
}

// load performs one store load, coalescing concurrent callers onto a
// single fetch. A load overtaken by an invalidation is discarded and
// retried, so a miss issued after a mutation never receives the
// snapshot a pre-mutation flight fetched.
func (c *Cache) load(ctx context.Context) *Snapshot {
	for {
		v, err, _ := c.sf.Do(keyLoad, func() (any, error) {
			c.mu.Lock()
			startGen := c.gen
			c.mu.Unlock()

			snap, err := c.store.LoadAll(ctx)
			if err != nil {
				return nil, err
			}

			c.mu.Lock()
			defer c.mu.Unlock()
			if c.gen != startGen {
				return nil, errSuperseded
			}
			c.populate(snap)
			return snap, nil
		})
		if errors.Is(err, errSuperseded) {
			continue
		}
		if err != nil {
			c.logger.Error("catalog load failed, serving empty catalog", zap.Error(err))
			return nil
		}
		return v.(*Snapshot)
	}
}

// populate stores all entries for one snapshot. Caller holds c.mu.
func (c *Cache) populate(snap *Snapshot) {
	for _, kind := range Kinds() {
		slice := snap.Slice(kind)
		c.entries.SetDefault(kindKey(kind), slice)
		c.entries.SetDefault(indexKey(kind), NewIndex(slice))
	}
	c.entries.SetDefault(keyAll, snap.All())
	c.entries.SetDefault(keyIndexAll, NewIndex(snap.All()))
	c.entries.SetDefault(keyMeta, snap.Meta)
}
