package cover

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/mitchellh/hashstructure"
	"github.com/pkg/errors"

	"github.com/graphsat/vertexcover/pkg/graph"
)

// cache remembers covers by graph content. Edge order does not
// contribute to the key. A nil *cache is valid and never hits.
type cache struct {
	store *lru.Cache
}

func newCache(size int) (*cache, error) {
	if size < 0 {
		return nil, errors.Errorf("cache size must not be negative, got %d", size)
	}
	store, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "creating cover cache")
	}
	return &cache{store: store}, nil
}

func key(g graph.Snapshot) (uint64, bool) {
	h, err := hashstructure.Hash(g, nil)
	return h, err == nil
}

func (c *cache) get(g graph.Snapshot) (Cover, bool) {
	if c == nil {
		return nil, false
	}
	k, ok := key(g)
	if !ok {
		return nil, false
	}
	v, ok := c.store.Get(k)
	if !ok {
		return nil, false
	}
	return append(Cover(nil), v.(Cover)...), true
}

func (c *cache) put(g graph.Snapshot, cv Cover) {
	if c == nil {
		return
	}
	if k, ok := key(g); ok {
		c.store.Add(k, append(Cover(nil), cv...))
	}
}

func (c *cache) len() int {
	if c == nil {
		return 0
	}
	return c.store.Len()
}
