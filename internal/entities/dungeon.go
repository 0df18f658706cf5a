package entities

import (
	"slices"
)

// AttributeSet is an immutable set of attribute codes
type AttributeSet struct {
	codes []AttributeCode
}

// NewAttributeSet builds a set from the given codes; duplicates are dropped
func NewAttributeSet(codes ...AttributeCode) AttributeSet {
	sorted := slices.Clone(codes)
	slices.Sort(sorted)
	return AttributeSet{codes: slices.Compact(sorted)}
}

// Contains reports whether code is a member of the set
func (s AttributeSet) Contains(code AttributeCode) bool {
	_, found := slices.BinarySearch(s.codes, code)
	return found
}

// Codes returns the members in ascending order
func (s AttributeSet) Codes() []AttributeCode {
	return slices.Clone(s.codes)
}

// Len returns the number of members
func (s AttributeSet) Len() int {
	return len(s.codes)
}

// Dungeon is a farming location with one admissible set per attribute dimension
type Dungeon struct {
	Name       string
	BaseDrops  AttributeSet
	BonusDrops AttributeSet
	SkillDrops AttributeSet
}

// SlotDrops returns the admissible set of the given secondary slot
func (d *Dungeon) SlotDrops(slot FixedSlot) AttributeSet {
	if slot == FixedSlotBonus {
		return d.BonusDrops
	}
	return d.SkillDrops
}
