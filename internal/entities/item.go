// Package entities provides the core data structures for essence-api.
package entities

import (
	"strings"
)

// ItemNameSeparator separates the category prefix from the instance name
const ItemNameSeparator = "-"

// EntityTypeItem is the rpg-toolkit entity type reported by items
const EntityTypeItem = "item"

// AttributeCode identifies one value inside an attribute dimension
type AttributeCode int

// Item is a farmable weapon whose essence is fixed by three attribute codes.
// Items are created once at catalog load and never mutated.
type Item struct {
	Name  string        `json:"name" yaml:"name"`
	Base  AttributeCode `json:"base" yaml:"base"`
	Bonus AttributeCode `json:"bonus" yaml:"bonus"`
	Skill AttributeCode `json:"skill" yaml:"skill"`
}

// GetID returns the item name, which is unique within a catalog
func (i Item) GetID() string {
	return i.Name
}

// GetType returns the entity type for rpg-toolkit
func (i Item) GetType() string {
	return EntityTypeItem
}

// Category returns the category prefix of the item name
func (i Item) Category() string {
	category, _ := SplitName(i.Name)
	return category
}

// SlotValue returns the item's value in the given fixed slot
func (i Item) SlotValue(slot FixedSlot) AttributeCode {
	if slot == FixedSlotBonus {
		return i.Bonus
	}
	return i.Skill
}

// SplitName splits "Category-Instance" at the first separator. A name without
// a separator has an empty category.
func SplitName(name string) (category, instance string) {
	category, instance, found := strings.Cut(name, ItemNameSeparator)
	if !found {
		return "", name
	}
	return category, instance
}
