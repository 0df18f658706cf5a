package catalog

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/essence-api/internal/entities"
)

// Dimension names one of the three attribute axes
type Dimension string

const (
	DimensionBase  Dimension = "base"
	DimensionBonus Dimension = "bonus"
	DimensionSkill Dimension = "skill"
)

// LabelTable maps attribute codes to display labels
type LabelTable map[entities.AttributeCode]string

var baseLabels = LabelTable{
	1: "Agility Boost",
	2: "Strength Boost",
	3: "Will Boost",
	4: "Intellect Boost",
	5: "Main Attribute Boost",
}

var bonusLabels = LabelTable{
	1:  "ATK Boost",
	2:  "Physical DMG Boost",
	3:  "Heat DMG Boost",
	4:  "Electric DMG Boost",
	5:  "Cryo DMG Boost",
	6:  "Nature DMG Boost",
	7:  "Critical Rate Boost",
	8:  "Ultimate Gain Boost",
	9:  "Arts Intensity Boost",
	10: "Arts DMG Boost",
	11: "Treatment Efficiency Boost",
	12: "HP Boost",
}

var skillLabels = LabelTable{
	1:  "Assault",
	2:  "Suppression",
	3:  "Pursuit",
	4:  "Crusher",
	5:  "Finesse",
	6:  "Detonate",
	7:  "Flow",
	8:  "Efficiency",
	9:  "Inspiring",
	10: "Infliction",
	11: "Medicant",
	12: "Fracture",
	13: "Brutality",
	14: "Twilight",
}

// Label returns the display label for code, or "Unknown(<code>)" when the
// table has no entry.
func (t LabelTable) Label(code entities.AttributeCode) string {
	if label, ok := t[code]; ok {
		return label
	}
	return fmt.Sprintf("Unknown(%d)", code)
}

// Code returns the code whose label matches exactly
func (t LabelTable) Code(label string) (entities.AttributeCode, bool) {
	for code, l := range t {
		if l == label {
			return code, true
		}
	}
	return 0, false
}

// Labels returns all labels sorted alphabetically
func (t LabelTable) Labels() []string {
	out := make([]string, 0, len(t))
	for _, l := range t {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Table returns the label table of a dimension
func Table(dim Dimension) LabelTable {
	switch dim {
	case DimensionBase:
		return baseLabels
	case DimensionBonus:
		return bonusLabels
	case DimensionSkill:
		return skillLabels
	default:
		return LabelTable{}
	}
}

// BaseLabel renders a base attribute code
func BaseLabel(code entities.AttributeCode) string { return baseLabels.Label(code) }

// BonusLabel renders a bonus attribute code
func BonusLabel(code entities.AttributeCode) string { return bonusLabels.Label(code) }

// SkillLabel renders a skill attribute code
func SkillLabel(code entities.AttributeCode) string { return skillLabels.Label(code) }

// SlotLabel renders the pinned value of a fixed slot
func SlotLabel(slot entities.FixedSlot, code entities.AttributeCode) string {
	if slot == entities.FixedSlotBonus {
		return BonusLabel(code)
	}
	return SkillLabel(code)
}

// BaseCode resolves a base label
func BaseCode(label string) (entities.AttributeCode, bool) { return baseLabels.Code(label) }

// BonusCode resolves a bonus label
func BonusCode(label string) (entities.AttributeCode, bool) { return bonusLabels.Code(label) }

// SkillCode resolves a skill label
func SkillCode(label string) (entities.AttributeCode, bool) { return skillLabels.Code(label) }
