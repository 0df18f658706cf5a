package testutils

import (
	"github.com/KirkDiggler/essence-api/internal/catalog"
	"github.com/KirkDiggler/essence-api/internal/entities"
)

// Fixture item names
const (
	ItemA = "Sword-A"
	ItemB = "Sword-B"
	ItemC = "Arts Unit-C"

	FixtureDungeon = "Test Cave"
)

// FixtureDungeonDef drops bases {1,2}, bonuses {5,8} and skills {9,10}
func FixtureDungeonDef() *entities.Dungeon {
	return &entities.Dungeon{
		Name:       FixtureDungeon,
		BaseDrops:  entities.NewAttributeSet(1, 2),
		BonusDrops: entities.NewAttributeSet(5, 8),
		SkillDrops: entities.NewAttributeSet(9, 10),
	}
}

// FixtureItems returns A(1,5,9), B(2,5,10) and C(1,8,9)
func FixtureItems() []entities.Item {
	return []entities.Item{
		{Name: ItemA, Base: 1, Bonus: 5, Skill: 9},
		{Name: ItemB, Base: 2, Bonus: 5, Skill: 10},
		{Name: ItemC, Base: 1, Bonus: 8, Skill: 9},
	}
}

// FixtureCatalog wraps the fixture items and dungeon in a catalog
func FixtureCatalog() *catalog.Catalog {
	c, err := catalog.New(FixtureItems(), []*entities.Dungeon{FixtureDungeonDef()})
	if err != nil {
		panic(err)
	}
	return c
}
