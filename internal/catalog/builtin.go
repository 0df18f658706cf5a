package catalog

import (
	"github.com/KirkDiggler/essence-api/internal/entities"
)

func set(codes ...entities.AttributeCode) entities.AttributeSet {
	return entities.NewAttributeSet(codes...)
}

func builtinDungeons() []*entities.Dungeon {
	return []*entities.Dungeon{
		{
			Name:       "Core Area",
			BaseDrops:  set(1, 2, 3, 4, 5),
			BonusDrops: set(1, 3, 4, 5, 6, 8, 9, 10),
			SkillDrops: set(1, 2, 3, 4, 5, 6, 7, 8),
		},
		{
			Name:       "Originium Research Park",
			BaseDrops:  set(1, 2, 3, 4, 5),
			BonusDrops: set(1, 2, 4, 5, 6, 7, 8, 10),
			SkillDrops: set(2, 3, 5, 8, 9, 10, 11, 12),
		},
		{
			Name:       "Mining Area",
			BaseDrops:  set(1, 2, 3, 4, 5),
			BonusDrops: set(2, 3, 5, 6, 7, 9, 11, 12),
			SkillDrops: set(1, 2, 5, 6, 8, 10, 13, 14),
		},
		{
			Name:       "Energy Highlands",
			BaseDrops:  set(1, 2, 3, 4, 5),
			BonusDrops: set(1, 2, 3, 6, 7, 9, 11, 12),
			SkillDrops: set(3, 4, 7, 9, 10, 11, 12, 13),
		},
		{
			Name:       "Wuling City",
			BaseDrops:  set(1, 2, 3, 4, 5),
			BonusDrops: set(1, 4, 5, 7, 8, 10, 11, 12),
			SkillDrops: set(1, 4, 6, 7, 11, 12, 13, 14),
		},
	}
}

func builtinItems() []entities.Item {
	return []entities.Item{
		{Name: "Sword-Steel Echo", Base: 1, Bonus: 2, Skill: 5},
		{Name: "Sword-Fortress Forger", Base: 4, Bonus: 8, Skill: 9},
		{Name: "Sword-Finchaser 3.0", Base: 2, Bonus: 5, Skill: 2},
		{Name: "Sword-Twelve Questions", Base: 1, Bonus: 1, Skill: 10},
		{Name: "Sword-O.B.J. Edge of Lightness", Base: 1, Bonus: 1, Skill: 7},
		{Name: "Sword-Admiration", Base: 1, Bonus: 2, Skill: 14},
		{Name: "Sword-Grand Vision", Base: 1, Bonus: 1, Skill: 10},
		{Name: "Sword-Never Rest", Base: 3, Bonus: 1, Skill: 7},
		{Name: "Sword-Flameforge", Base: 4, Bonus: 1, Skill: 14},
		{Name: "Sword-Dark Torch", Base: 4, Bonus: 3, Skill: 10},
		{Name: "Sword-Fuyao", Base: 5, Bonus: 7, Skill: 14},
		{Name: "Sword-Thermite Cutter", Base: 3, Bonus: 1, Skill: 7},
		{Name: "Sword-Glorious Renown", Base: 5, Bonus: 2, Skill: 13},
		{Name: "Sword-White Night Nova", Base: 5, Bonus: 9, Skill: 10},
		{Name: "Greatsword-Dragon Seeker", Base: 2, Bonus: 8, Skill: 6},
		{Name: "Greatsword-Eternal Constancy", Base: 2, Bonus: 9, Skill: 13},
		{Name: "Greatsword-Final Call", Base: 2, Bonus: 12, Skill: 11},
		{Name: "Greatsword-O.B.J. Heavy Burden", Base: 2, Bonus: 12, Skill: 8},
		{Name: "Greatsword-Thunderstripe", Base: 2, Bonus: 12, Skill: 11},
		{Name: "Greatsword-Khravengger", Base: 2, Bonus: 1, Skill: 6},
		{Name: "Greatsword-Exemplar", Base: 5, Bonus: 1, Skill: 2},
		{Name: "Greatsword-Former Finery", Base: 3, Bonus: 12, Skill: 8},
		{Name: "Greatsword-Shattering Sovereign", Base: 2, Bonus: 7, Skill: 4},
		{Name: "Polearm-Righteous Inlay", Base: 2, Bonus: 8, Skill: 13},
		{Name: "Polearm-O.B.J. Razorhorn", Base: 3, Bonus: 2, Skill: 10},
		{Name: "Polearm-Centripetal Spear", Base: 3, Bonus: 4, Skill: 2},
		{Name: "Polearm-Mountain Bearer", Base: 1, Bonus: 2, Skill: 8},
		{Name: "Polearm-Valiant", Base: 1, Bonus: 2, Skill: 5},
		{Name: "Polearm-JET", Base: 5, Bonus: 1, Skill: 2},
		{Name: "Handcannon-Opus The Living", Base: 1, Bonus: 10, Skill: 10},
		{Name: "Handcannon-O.B.J. Velocitous", Base: 1, Bonus: 8, Skill: 6},
		{Name: "Handcannon-Rational Farewell", Base: 2, Bonus: 3, Skill: 3},
		{Name: "Handcannon-Artistic Tyranny", Base: 4, Bonus: 7, Skill: 12},
		{Name: "Handcannon-Navigator", Base: 4, Bonus: 5, Skill: 10},
		{Name: "Handcannon-Wedge", Base: 5, Bonus: 7, Skill: 10},
		{Name: "Handcannon-Clannibal", Base: 5, Bonus: 10, Skill: 10},
		{Name: "Arts Unit-Dirge", Base: 4, Bonus: 1, Skill: 14},
		{Name: "Arts Unit-Spellless", Base: 3, Bonus: 8, Skill: 9},
		{Name: "Arts Unit-Wild Wanderer", Base: 4, Bonus: 4, Skill: 10},
		{Name: "Arts Unit-Freedom to Proselytize", Base: 3, Bonus: 11, Skill: 11},
		{Name: "Arts Unit-O.B.J. Arts Identifier", Base: 4, Bonus: 9, Skill: 3},
		{Name: "Arts Unit-Mission Accomplished", Base: 3, Bonus: 8, Skill: 3},
		{Name: "Arts Unit-Blue Star Whisper", Base: 4, Bonus: 11, Skill: 10},
		{Name: "Arts Unit-Opus Etch Figure", Base: 3, Bonus: 6, Skill: 2},
		{Name: "Arts Unit-Destruction Unit", Base: 5, Bonus: 9, Skill: 6},
		{Name: "Arts Unit-Oblivion", Base: 4, Bonus: 10, Skill: 14},
		{Name: "Arts Unit-Chivalric Virtues", Base: 3, Bonus: 12, Skill: 11},
	}
}

// Builtin returns the catalog shipped with the service
func Builtin() *Catalog {
	c, err := New(builtinItems(), builtinDungeons())
	if err != nil {
		panic("catalog: invalid builtin catalog: " + err.Error())
	}
	return c
}
