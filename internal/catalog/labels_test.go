package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/essence-api/internal/catalog"
	"github.com/KirkDiggler/essence-api/internal/entities"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "Agility Boost", catalog.BaseLabel(1))
	assert.Equal(t, "HP Boost", catalog.BonusLabel(12))
	assert.Equal(t, "Twilight", catalog.SkillLabel(14))
	assert.Equal(t, "Cryo DMG Boost", catalog.SlotLabel(entities.FixedSlotBonus, 5))
	assert.Equal(t, "Finesse", catalog.SlotLabel(entities.FixedSlotSkill, 5))
}

func TestLabelsFallBackForUnknownCodes(t *testing.T) {
	assert.Equal(t, "Unknown(0)", catalog.BaseLabel(0))
	assert.Equal(t, "Unknown(13)", catalog.BonusLabel(13))
	assert.Equal(t, "Unknown(-4)", catalog.SkillLabel(-4))
	assert.Equal(t, "Unknown(1)", catalog.Table(catalog.Dimension("mystery")).Label(1))
}

func TestLabelCodes(t *testing.T) {
	code, ok := catalog.BaseCode("Will Boost")
	assert.True(t, ok)
	assert.Equal(t, entities.AttributeCode(3), code)

	code, ok = catalog.SkillCode("Brutality")
	assert.True(t, ok)
	assert.Equal(t, entities.AttributeCode(13), code)

	_, ok = catalog.BonusCode("Luck Boost")
	assert.False(t, ok)

	labels := catalog.Table(catalog.DimensionBase).Labels()
	assert.Equal(t, []string{
		"Agility Boost",
		"Intellect Boost",
		"Main Attribute Boost",
		"Strength Boost",
		"Will Boost",
	}, labels)
}
