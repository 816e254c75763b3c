package collision

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/torus/internal/core/config"
	"github.com/zeusync/torus/internal/core/observability/log"
	"github.com/zeusync/torus/internal/core/systems/physics"
)

// Catalog maps names to polygons. Identical geometry registered under
// different names is stored once.
type Catalog struct {
	mu       sync.RWMutex
	byName   map[string]Polygon
	interned map[uint64][]Polygon
	logger   log.Log
}

func NewCatalog(logger log.Log) *Catalog {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Catalog{
		byName:   make(map[string]Polygon),
		interned: make(map[uint64][]Polygon),
		logger:   logger,
	}
}

// NewCatalogFromConfig registers every shape definition in order.
func NewCatalogFromConfig(defs []config.ShapeDef, logger log.Log) (*Catalog, error) {
	c := NewCatalog(logger)
	for _, def := range defs {
		if err := c.Register(def.Name, def.Vertices()); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) Register(name string, points []physics.Vec2) error {
	polygon, err := NewPolygon(points)
	if err != nil {
		return fmt.Errorf("shape %q: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateShape, name)
	}

	for _, existing := range c.interned[polygon.Fingerprint()] {
		if existing.Equal(polygon) {
			c.logger.Debug("Shape shares geometry", log.String("name", name), log.Int("vertices", polygon.Len()))
			c.byName[name] = existing
			return nil
		}
	}
	c.interned[polygon.Fingerprint()] = append(c.interned[polygon.Fingerprint()], polygon)
	c.byName[name] = polygon
	return nil
}

func (c *Catalog) Polygon(name string) (Polygon, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byName[name]
	if !ok {
		return Polygon{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return p, nil
}

// Names returns registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}

// Distinct is the number of unique geometries stored.
func (c *Catalog) Distinct() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, ps := range c.interned {
		n += len(ps)
	}
	return n
}
