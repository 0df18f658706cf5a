// Package catalog holds the static item and dungeon definitions and the
// display labels of attribute codes.
package catalog

import (
	"sort"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
)

// Catalog is an immutable set of items and dungeons. Items keep their
// definition order; dungeons are listed by name.
type Catalog struct {
	items    []entities.Item
	byName   map[string]entities.Item
	dungeons []*entities.Dungeon
}

// New validates and builds a catalog. Item and dungeon names must be unique
// and non-empty.
func New(items []entities.Item, dungeons []*entities.Dungeon) (*Catalog, error) {
	vb := errors.NewValidationBuilder()

	byName := make(map[string]entities.Item, len(items))
	for i, item := range items {
		if item.Name == "" {
			vb.Fieldf("items", "item %d has no name", i)
			continue
		}
		if _, dup := byName[item.Name]; dup {
			vb.Fieldf("items", "duplicate item %q", item.Name)
			continue
		}
		byName[item.Name] = item
	}

	seen := make(map[string]bool, len(dungeons))
	sorted := make([]*entities.Dungeon, 0, len(dungeons))
	for i, d := range dungeons {
		if d == nil || d.Name == "" {
			vb.Fieldf("dungeons", "dungeon %d has no name", i)
			continue
		}
		if seen[d.Name] {
			vb.Fieldf("dungeons", "duplicate dungeon %q", d.Name)
			continue
		}
		seen[d.Name] = true
		sorted = append(sorted, d)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	return &Catalog{
		items:    append([]entities.Item(nil), items...),
		byName:   byName,
		dungeons: sorted,
	}, nil
}

// Items returns a copy of all items in definition order
func (c *Catalog) Items() []entities.Item {
	return append([]entities.Item(nil), c.items...)
}

// Item looks an item up by name
func (c *Catalog) Item(name string) (entities.Item, bool) {
	item, ok := c.byName[name]
	return item, ok
}

// Dungeons returns the dungeons ordered by name
func (c *Catalog) Dungeons() []*entities.Dungeon {
	return append([]*entities.Dungeon(nil), c.dungeons...)
}

// Dungeon looks a dungeon up by name
func (c *Catalog) Dungeon(name string) (*entities.Dungeon, bool) {
	for _, d := range c.dungeons {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// Names returns every item name in definition order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.items))
	for _, item := range c.items {
		names = append(names, item.Name)
	}
	return names
}

// Categories returns the distinct item categories, sorted
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.items {
		category := item.Category()
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	sort.Strings(out)
	return out
}

// ItemsInCategory returns the items of a category sorted by name. An empty
// category returns every item sorted by name.
func (c *Catalog) ItemsInCategory(category string) []entities.Item {
	var out []entities.Item
	for _, item := range c.items {
		if category == "" || item.Category() == category {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
