// Package catalog holds the immutable university snapshot loaded at startup.
package catalog

import (
	"embed"
	"fmt"
	"io"
	"os"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/okian/campus/internal/domain/model"
)

//go:embed data/universities.json
var bundled embed.FS

const bundledPath = "data/universities.json"

//nolint:gochecknoglobals // shared codec config
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Catalog is a read-only list of universities with an id index.
// It is safe for concurrent use since nothing mutates it after New.
type Catalog struct {
	items []model.University
	index map[string]int
}

// New builds a catalog from records, rejecting empty and duplicate ids.
// The slice is copied.
func New(records []model.University) (*Catalog, error) {
	c := &Catalog{
		items: slices.Clone(records),
		index: make(map[string]int, len(records)),
	}
	for i, u := range c.items {
		if u.ID == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyID)
		}
		if _, dup := c.index[u.ID]; dup {
			return nil, fmt.Errorf("%q: %w", u.ID, ErrDuplicateID)
		}
		c.index[u.ID] = i
	}
	return c, nil
}

// Load decodes a JSON array of records.
func Load(r io.Reader) (*Catalog, error) {
	var records []model.University
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return New(records)
}

// LoadFile reads the catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // operator supplied path
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Embedded returns the catalog bundled with the binary.
func Embedded() (*Catalog, error) {
	f, err := bundled.Open(bundledPath)
	if err != nil {
		return nil, fmt.Errorf("open bundled catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Open loads path when set, the bundled catalog otherwise.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Embedded()
	}
	return LoadFile(path)
}

// All returns the records in catalog order. The result is a copy.
func (c *Catalog) All() []model.University {
	return slices.Clone(c.items)
}

// Get resolves id.
func (c *Catalog) Get(id string) (model.University, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.University{}, false
	}
	return c.items[i], true
}

// Len reports the number of records.
func (c *Catalog) Len() int { return len(c.items) }
