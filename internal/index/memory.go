package index

import (
	"sort"
	"sync"
	"time"

	"github.com/villapro/villapro/internal/domain"
)

// Catalog is the in-memory villa collection owned by the controller.
// It mirrors the remote store after each confirmed operation and is the
// only thing search/filter and dashboard stats ever read.
type Catalog struct {
	mu         sync.RWMutex
	villas     map[string]domain.Villa // ID -> Villa
	lastReload time.Time               // Timestamp of last full reload
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		villas: make(map[string]domain.Villa),
	}
}

// Replace swaps in a full result set (used after a remote fetch).
func (c *Catalog) Replace(villas []domain.Villa) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.villas = make(map[string]domain.Villa, len(villas))
	for _, v := range villas {
		c.villas[v.ID] = v
	}
	c.lastReload = time.Now()
}

// Upsert adds or overwrites a single villa after a confirmed insert or
// update.
func (c *Catalog) Upsert(v domain.Villa) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.villas[v.ID] = v
}

// Remove drops a villa after a confirmed delete. Removing an absent id
// is a no-op.
func (c *Catalog) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.villas, id)
}

// Get retrieves a villa by id.
func (c *Catalog) Get(id string) (domain.Villa, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.villas[id]
	return v, ok
}

// All returns every villa ordered by creation time descending (newest
// first), regardless of the order records were loaded in.
func (c *Catalog) All() []domain.Villa {
	c.mu.RLock()
	defer c.mu.RUnlock()

	villas := make([]domain.Villa, 0, len(c.villas))
	for _, v := range c.villas {
		villas = append(villas, v)
	}
	sort.Slice(villas, func(i, j int) bool {
		if !villas[i].CreatedAt.Equal(villas[j].CreatedAt) {
			return villas[i].CreatedAt.After(villas[j].CreatedAt)
		}
		// Stable order for records sharing a timestamp.
		return villas[i].ID > villas[j].ID
	})
	return villas
}

// Clear empties the catalog (sign-out).
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.villas = make(map[string]domain.Villa)
	c.lastReload = time.Time{}
}

// Count returns the number of villas held.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.villas)
}

// Stats computes the dashboard aggregates over the full collection.
func (c *Catalog) Stats() domain.Stats {
	return domain.ComputeStats(c.All())
}

// LastReload returns the timestamp of the last full reload.
func (c *Catalog) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
