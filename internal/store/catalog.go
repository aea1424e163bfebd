package store

import (
	"sort"
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/toolshedapp/toolshed/internal/model"
	"github.com/toolshedapp/toolshed/internal/storage"
)

// Catalog owns the set of tool listings and the set of favorited listing
// IDs. Listings keep insertion order; favorites are a set persisted as a
// sorted slice under their own key. Deleting a listing cascades into the
// favorites set so no favorite ever references a listing that does not
// exist — the cascade is the sole integrity guarantee, favorites are never
// lazily filtered at read time.
type Catalog struct {
	mu        sync.RWMutex
	listings  []model.Listing
	favorites map[string]struct{}

	node   *snowflake.Node
	writer *storage.Writer
	notify *Notifier
}

// NewCatalog loads the persisted catalog state from kv and returns a store
// wired to the given writer and notifier. A missing or unparseable blob
// falls back to an empty collection.
func NewCatalog(kv storage.KV, w *storage.Writer, n *Notifier, node *snowflake.Node) *Catalog {
	c := &Catalog{
		listings:  []model.Listing{},
		favorites: make(map[string]struct{}),
		node:      node,
		writer:    w,
		notify:    n,
	}
	if blob, err := kv.Get(keyListings); err == nil && blob != nil {
		var ls []model.Listing
		if err := json.Unmarshal(blob, &ls); err != nil {
			zap.S().Warnw("catalog listings blob unreadable, starting empty", "error", err)
		} else {
			c.listings = ls
		}
	}
	if blob, err := kv.Get(keyFavorites); err == nil && blob != nil {
		var ids []string
		if err := json.Unmarshal(blob, &ids); err != nil {
			zap.S().Warnw("favorites blob unreadable, starting empty", "error", err)
		} else {
			for _, id := range ids {
				c.favorites[id] = struct{}{}
			}
		}
	}
	return c
}

// Listings returns a copy of all listings in insertion order.
func (c *Catalog) Listings() []model.Listing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Get returns the listing with the given ID, if present.
func (c *Catalog) Get(id string) (model.Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.listings {
		if l.ID == id {
			return l, true
		}
	}
	return model.Listing{}, false
}

// Add assigns a fresh identifier, forces archived=false, normalizes the
// category and appends the listing. No validation of name or price happens
// here; that is the presentation layer's job. Returns the new ID.
func (c *Catalog) Add(l model.Listing) string {
	c.mu.Lock()
	l.ID = c.node.Generate().String()
	l.Archived = false
	l.Category = model.NormalizeCategory(l.Category)
	c.listings = append(c.listings, l)
	c.persistListingsLocked()
	c.mu.Unlock()

	c.notify.Publish(TopicCatalogChanged)
	return l.ID
}

// Update merges the patch into the listing with the given ID. An unknown ID
// is a silent no-op.
func (c *Catalog) Update(id string, p model.ListingPatch) {
	c.mu.Lock()
	changed := false
	for i := range c.listings {
		if c.listings[i].ID != id {
			continue
		}
		l := &c.listings[i]
		if p.Name != nil {
			l.Name = *p.Name
		}
		if p.PricePerDay != nil {
			l.PricePerDay = *p.PricePerDay
		}
		if p.Category != nil {
			l.Category = model.NormalizeCategory(*p.Category)
		}
		if p.Description != nil {
			l.Description = *p.Description
		}
		if p.PhotoRef != nil {
			l.PhotoRef = *p.PhotoRef
		}
		if p.Archived != nil {
			l.Archived = *p.Archived
		}
		changed = true
		break
	}
	if changed {
		c.persistListingsLocked()
	}
	c.mu.Unlock()

	if changed {
		c.notify.Publish(TopicCatalogChanged)
	}
}

// SetArchived flips the archived flag with Update's merge semantics.
func (c *Catalog) SetArchived(id string, archived bool) {
	c.Update(id, model.ListingPatch{Archived: &archived})
}

// Delete removes the listing and cascades removal of its ID from the
// favorites set. Both collections change within one lock hold, so consumers
// observe the cascade as a single state transition; the two durable writes
// behind it remain independent.
func (c *Catalog) Delete(id string) {
	c.mu.Lock()
	changed := false
	for i := range c.listings {
		if c.listings[i].ID == id {
			c.listings = append(c.listings[:i], c.listings[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		delete(c.favorites, id)
		c.persistListingsLocked()
		c.persistFavoritesLocked()
	}
	c.mu.Unlock()

	if changed {
		c.notify.Publish(TopicCatalogChanged)
	}
}

// ToggleFavorite adds the ID to the favorites set if absent, else removes
// it. No existence check against the catalog happens here; Delete's cascade
// is what keeps the set consistent.
func (c *Catalog) ToggleFavorite(id string) {
	c.mu.Lock()
	if _, ok := c.favorites[id]; ok {
		delete(c.favorites, id)
	} else {
		c.favorites[id] = struct{}{}
	}
	c.persistFavoritesLocked()
	c.mu.Unlock()

	c.notify.Publish(TopicCatalogChanged)
}

// IsFavorite reports membership in the favorites set.
func (c *Catalog) IsFavorite(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.favorites[id]
	return ok
}

// Favorites returns the favorited IDs sorted lexicographically.
func (c *Catalog) Favorites() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.favoritesLocked()
}

func (c *Catalog) favoritesLocked() []string {
	out := make([]string, 0, len(c.favorites))
	for id := range c.favorites {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) persistListingsLocked() {
	blob, err := json.Marshal(c.listings)
	if err != nil {
		zap.S().Warnw("marshal listings failed", "error", err)
		return
	}
	c.writer.Enqueue(keyListings, blob)
}

func (c *Catalog) persistFavoritesLocked() {
	blob, err := json.Marshal(c.favoritesLocked())
	if err != nil {
		zap.S().Warnw("marshal favorites failed", "error", err)
		return
	}
	c.writer.Enqueue(keyFavorites, blob)
}
