package entities

import (
	"slices"
)

// FixedSlot names the secondary dimension a narrowing filter pins
type FixedSlot string

const (
	FixedSlotBonus FixedSlot = "bonus"
	FixedSlotSkill FixedSlot = "skill"
)

// FixedSlots lists the pinnable slots in search order
var FixedSlots = []FixedSlot{FixedSlotBonus, FixedSlotSkill}

// Other returns the secondary slot left free by a filter pinning s
func (s FixedSlot) Other() FixedSlot {
	if s == FixedSlotBonus {
		return FixedSlotSkill
	}
	return FixedSlotBonus
}

// IsValid reports whether s is a known slot
func (s FixedSlot) IsValid() bool {
	return s == FixedSlotBonus || s == FixedSlotSkill
}

// NarrowingFilter restricts a dungeon's drops to a base-candidate subset and
// one pinned secondary value. BaseCandidates is kept in ascending order.
type NarrowingFilter struct {
	Dungeon        string
	BaseCandidates []AttributeCode
	FixedSlot      FixedSlot
	FixedValue     AttributeCode
}

// HasBase reports whether code is one of the base candidates
func (f *NarrowingFilter) HasBase(code AttributeCode) bool {
	return slices.Contains(f.BaseCandidates, code)
}

// Equal reports whether both filters have the same four fields
func (f *NarrowingFilter) Equal(other *NarrowingFilter) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Dungeon == other.Dungeon &&
		f.FixedSlot == other.FixedSlot &&
		f.FixedValue == other.FixedValue &&
		slices.Equal(f.BaseCandidates, other.BaseCandidates)
}

// PlanScore ranks plans: more matches first, then tighter candidate sets.
// NegCandidates is the negated size of the base-candidate subset.
type PlanScore struct {
	MatchCount    int
	NegCandidates int
}

// FarmPlan is one ranked recommendation of a dungeon run and narrowing filter
type FarmPlan struct {
	Dungeon string
	Filter  NarrowingFilter
	Matched []Item
	Score   PlanScore
}

// Others returns the matched items other than the named target
func (p *FarmPlan) Others(target string) []Item {
	others := make([]Item, 0, len(p.Matched))
	for _, item := range p.Matched {
		if item.Name != target {
			others = append(others, item)
		}
	}
	return others
}

// Matches reports whether the named item is among the matched items
func (p *FarmPlan) Matches(name string) bool {
	for _, item := range p.Matched {
		if item.Name == name {
			return true
		}
	}
	return false
}
