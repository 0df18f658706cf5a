package essence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/essence-api/internal/engine/essence"
	"github.com/KirkDiggler/essence-api/internal/entities"
)

func testDungeon() *entities.Dungeon {
	return &entities.Dungeon{
		Name:       "Test Cave",
		BaseDrops:  entities.NewAttributeSet(1, 2),
		BonusDrops: entities.NewAttributeSet(5, 8),
		SkillDrops: entities.NewAttributeSet(9, 10),
	}
}

func TestDropsInRequiresEveryDimension(t *testing.T) {
	d := testDungeon()

	testCases := []struct {
		name string
		item entities.Item
		want bool
	}{
		{"all three admissible", entities.Item{Name: "x", Base: 1, Bonus: 5, Skill: 9}, true},
		{"base missing", entities.Item{Name: "x", Base: 3, Bonus: 5, Skill: 9}, false},
		{"bonus missing", entities.Item{Name: "x", Base: 1, Bonus: 6, Skill: 9}, false},
		{"skill missing", entities.Item{Name: "x", Base: 1, Bonus: 5, Skill: 11}, false},
		{"cross combination of admissible values", entities.Item{Name: "x", Base: 2, Bonus: 8, Skill: 9}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, essence.DropsIn(tc.item, d))
		})
	}
}

func TestIsRecoveredBy(t *testing.T) {
	d := testDungeon()
	item := entities.Item{Name: "Sword-A", Base: 1, Bonus: 5, Skill: 9}

	testCases := []struct {
		name   string
		item   entities.Item
		filter entities.NarrowingFilter
		want   bool
	}{
		{
			name:   "bonus pinned and base listed",
			item:   item,
			filter: entities.NarrowingFilter{Dungeon: "Test Cave", BaseCandidates: []entities.AttributeCode{1, 2}, FixedSlot: entities.FixedSlotBonus, FixedValue: 5},
			want:   true,
		},
		{
			name:   "skill pinned and base listed",
			item:   item,
			filter: entities.NarrowingFilter{Dungeon: "Test Cave", BaseCandidates: []entities.AttributeCode{1}, FixedSlot: entities.FixedSlotSkill, FixedValue: 9},
			want:   true,
		},
		{
			name:   "other dungeon",
			item:   item,
			filter: entities.NarrowingFilter{Dungeon: "Elsewhere", BaseCandidates: []entities.AttributeCode{1}, FixedSlot: entities.FixedSlotBonus, FixedValue: 5},
			want:   false,
		},
		{
			name:   "base not a candidate",
			item:   item,
			filter: entities.NarrowingFilter{Dungeon: "Test Cave", BaseCandidates: []entities.AttributeCode{2}, FixedSlot: entities.FixedSlotBonus, FixedValue: 5},
			want:   false,
		},
		{
			name:   "pinned value differs",
			item:   item,
			filter: entities.NarrowingFilter{Dungeon: "Test Cave", BaseCandidates: []entities.AttributeCode{1}, FixedSlot: entities.FixedSlotBonus, FixedValue: 8},
			want:   false,
		},
		{
			name:   "item cannot drop in dungeon",
			item:   entities.Item{Name: "Sword-Z", Base: 1, Bonus: 5, Skill: 11},
			filter: entities.NarrowingFilter{Dungeon: "Test Cave", BaseCandidates: []entities.AttributeCode{1}, FixedSlot: entities.FixedSlotBonus, FixedValue: 5},
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, essence.IsRecoveredBy(tc.item, d, &tc.filter))
		})
	}
}
