package essence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/essence-api/internal/engine/essence"
	"github.com/KirkDiggler/essence-api/internal/entities"
)

func TestFindByExactAttributes(t *testing.T) {
	pool := []entities.Item{itemA, itemB, itemC}

	assert.Equal(t, []entities.Item{itemA}, essence.FindByExactAttributes(1, 5, 9, pool))

	none := essence.FindByExactAttributes(2, 8, 9, pool)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFindByExactAttributesSortsByName(t *testing.T) {
	pool := []entities.Item{
		{Name: "Sword-Twelve Questions", Base: 1, Bonus: 1, Skill: 10},
		{Name: "Arts Unit-Echo", Base: 1, Bonus: 1, Skill: 10},
		{Name: "Sword-Grand Vision", Base: 1, Bonus: 1, Skill: 10},
		{Name: "Sword-Other", Base: 1, Bonus: 1, Skill: 9},
	}

	got := essence.FindByExactAttributes(1, 1, 10, pool)
	names := make([]string, 0, len(got))
	for _, item := range got {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Arts Unit-Echo", "Sword-Grand Vision", "Sword-Twelve Questions"}, names)
}

func TestFindByExactAttributesAcceptsUnlabelledCodes(t *testing.T) {
	odd := entities.Item{Name: "Sword-Odd", Base: 42, Bonus: 99, Skill: 0}
	assert.Equal(t, []entities.Item{odd}, essence.FindByExactAttributes(42, 99, 0, []entities.Item{odd}))
}

func TestFindByName(t *testing.T) {
	item, ok := essence.FindByName("Sword-B", []entities.Item{itemA, itemB})
	assert.True(t, ok)
	assert.Equal(t, itemB, item)

	_, ok = essence.FindByName("Sword-Z", []entities.Item{itemA})
	assert.False(t, ok)
}
