package essence

import (
	"sort"

	"github.com/KirkDiggler/essence-api/internal/entities"
)

// FindByExactAttributes returns the pool items whose three attributes equal
// the triple, sorted by name. The result is never nil.
func FindByExactAttributes(base, bonus, skill entities.AttributeCode, pool []entities.Item) []entities.Item {
	out := make([]entities.Item, 0)
	for _, item := range pool {
		if item.Base == base && item.Bonus == bonus && item.Skill == skill {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindByName returns the first pool item with the given name
func FindByName(name string, pool []entities.Item) (entities.Item, bool) {
	for _, item := range pool {
		if item.Name == name {
			return item, true
		}
	}
	return entities.Item{}, false
}
