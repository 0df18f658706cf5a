package essence

import (
	"github.com/KirkDiggler/essence-api/internal/entities"
)

// DropsIn reports whether each of the item's three attributes is admissible
// in the dungeon. Dimensions are checked independently.
func DropsIn(item entities.Item, dungeon *entities.Dungeon) bool {
	return dungeon.BaseDrops.Contains(item.Base) &&
		dungeon.BonusDrops.Contains(item.Bonus) &&
		dungeon.SkillDrops.Contains(item.Skill)
}

// IsRecoveredBy reports whether running the dungeon with the filter can yield
// the item's exact essence.
func IsRecoveredBy(item entities.Item, dungeon *entities.Dungeon, filter *entities.NarrowingFilter) bool {
	if filter.Dungeon != dungeon.Name {
		return false
	}
	if !DropsIn(item, dungeon) {
		return false
	}
	if !filter.HasBase(item.Base) {
		return false
	}
	return item.SlotValue(filter.FixedSlot) == filter.FixedValue
}
