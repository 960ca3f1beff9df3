// Package catalog loads the ad configuration records the table is built
// from and indexes them by ID. Records come from the built-in sample list or
// from a JSONL fixture file; nothing is ever written back.
package catalog

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/adboard/pkg/types"
)

// Source yields a collection of ad configuration records.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Load returns the records in source order.
	Load() ([]types.AdConfig, error)
}

// Catalog is an immutable, validated record collection.
type Catalog struct {
	records []types.AdConfig
	byID    map[string]int
}

// New validates records and indexes them. Every record must pass
// AdConfig.Validate and carry a non-empty ID unique within the collection.
func New(records []types.AdConfig) (*Catalog, error) {
	c := &Catalog{
		records: slices.Clone(records),
		byID:    make(map[string]int, len(records)),
	}
	for i, r := range c.records {
		if r.ID == "" {
			return nil, fmt.Errorf("record %d: %w", i, types.ErrInvalidID)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("record %s: %w", r.ID, types.ErrDuplicateID)
		}
		c.byID[r.ID] = i
	}
	return c, nil
}

// Load reads src and builds a Catalog from it.
func Load(src Source) (*Catalog, error) {
	records, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}
	c, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}
	return c, nil
}

// Records returns a copy of the records in source order.
func (c *Catalog) Records() []types.AdConfig {
	return slices.Clone(c.records)
}

// Get returns the record with the given ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if no record has that ID.
func (c *Catalog) Get(id string) (types.AdConfig, error) {
	if id == "" {
		return types.AdConfig{}, types.ErrInvalidID
	}
	i, ok := c.byID[id]
	if !ok {
		return types.AdConfig{}, types.ErrNotFound
	}
	return c.records[i], nil
}

// IDs returns every record ID in source order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.records))
	for i, r := range c.records {
		ids[i] = r.ID
	}
	return ids
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}
