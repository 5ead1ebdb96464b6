package catalog

import (
	"errors"
	"fmt"

	"fitforge/plan-generator/internal/domain"
)

var (
	ErrEmptyCatalog = errors.New("catalog contains no entries")
	ErrDuplicateID  = errors.New("catalog contains duplicate entry id")
)

// Catalog is the read-only, in-memory exercise dataset. It is loaded once at
// process start and shared across concurrent generation requests; nothing
// mutates it after New returns, so no locking is needed.
type Catalog struct {
	entries []domain.CatalogEntry
	byID    map[string]int
}

// New validates the entries and builds the lookup index. Entry order is
// preserved; the generator relies on it for deterministic selection.
func New(entries []domain.CatalogEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: id and name are required", i)
		}
		if _, dup := byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		byID[e.ID] = i
	}
	return &Catalog{entries: entries, byID: byID}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// ByID returns the entry with the given id, if present.
func (c *Catalog) ByID(id string) (*domain.CatalogEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// Entries returns the full dataset in load order. Callers must treat the
// slice as read-only.
func (c *Catalog) Entries() []domain.CatalogEntry {
	return c.entries
}
