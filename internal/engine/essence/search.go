package essence

import (
	"slices"
	"sort"

	"github.com/KirkDiggler/essence-api/internal/entities"
)

const (
	// DefaultTopN is the number of plans returned when no limit is given
	DefaultTopN = 5

	// DefaultMaxBaseCandidates caps the size of a filter's base-candidate subset
	DefaultMaxBaseCandidates = 3
)

// Options tunes RecommendPlans
type Options struct {
	// TopN limits the number of plans; values <= 0 return no plans
	TopN int

	// MaxBaseCandidates is the largest base subset tried; values <= 0 use
	// DefaultMaxBaseCandidates
	MaxBaseCandidates int
}

// DefaultOptions returns TopN 5 with subsets of up to 3 base candidates
func DefaultOptions() Options {
	return Options{
		TopN:              DefaultTopN,
		MaxBaseCandidates: DefaultMaxBaseCandidates,
	}
}

// RecommendPlans enumerates every narrowing filter that can still drop the
// named target and ranks them by how many pool items each filter admits.
//
// A target missing from the pool yields no plans; so does TopN <= 0.
// Plans are ordered by match count descending, then dungeon name, base
// subset size, fixed slot and pinned value, all ascending.
func RecommendPlans(targetName string, pool []entities.Item, dungeons []*entities.Dungeon, opts Options) []entities.FarmPlan {
	plans := make([]entities.FarmPlan, 0)
	if opts.TopN <= 0 {
		return plans
	}

	target, ok := FindByName(targetName, pool)
	if !ok {
		return plans
	}

	maxBase := opts.MaxBaseCandidates
	if maxBase <= 0 {
		maxBase = DefaultMaxBaseCandidates
	}

	for _, dungeon := range dungeons {
		if !DropsIn(target, dungeon) {
			continue
		}

		candidates := dropsInDungeon(pool, dungeon)

		for _, slot := range entities.FixedSlots {
			pinned := target.SlotValue(slot)
			if !dungeon.SlotDrops(slot).Contains(pinned) {
				continue
			}

			universe := baseUniverse(candidates, slot, pinned)

			for size := 1; size <= maxBase; size++ {
				for subset := range Combinations(universe, size) {
					if !slices.Contains(subset, target.Base) {
						continue
					}

					filter := entities.NarrowingFilter{
						Dungeon:        dungeon.Name,
						BaseCandidates: subset,
						FixedSlot:      slot,
						FixedValue:     pinned,
					}

					matched := recoveredBy(candidates, dungeon, &filter)
					if !containsItem(matched, target) {
						continue
					}

					plans = append(plans, entities.FarmPlan{
						Dungeon: dungeon.Name,
						Filter:  filter,
						Matched: matched,
						Score: entities.PlanScore{
							MatchCount:    len(matched),
							NegCandidates: -len(subset),
						},
					})
				}
			}
		}
	}

	sortPlans(plans)

	if len(plans) > opts.TopN {
		plans = plans[:opts.TopN]
	}
	return plans
}

// dropsInDungeon keeps the pool items whose essence can drop in the dungeon
func dropsInDungeon(pool []entities.Item, dungeon *entities.Dungeon) []entities.Item {
	out := make([]entities.Item, 0, len(pool))
	for _, item := range pool {
		if DropsIn(item, dungeon) {
			out = append(out, item)
		}
	}
	return out
}

// baseUniverse collects the distinct base codes, ascending, of the items
// sharing the pinned value
func baseUniverse(items []entities.Item, slot entities.FixedSlot, pinned entities.AttributeCode) []entities.AttributeCode {
	var bases []entities.AttributeCode
	for _, item := range items {
		if item.SlotValue(slot) == pinned {
			bases = append(bases, item.Base)
		}
	}
	slices.Sort(bases)
	return slices.Compact(bases)
}

func recoveredBy(items []entities.Item, dungeon *entities.Dungeon, filter *entities.NarrowingFilter) []entities.Item {
	var matched []entities.Item
	for _, item := range items {
		if IsRecoveredBy(item, dungeon, filter) {
			matched = append(matched, item)
		}
	}
	return matched
}

func containsItem(items []entities.Item, target entities.Item) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func sortPlans(plans []entities.FarmPlan) {
	sort.SliceStable(plans, func(i, j int) bool {
		a, b := plans[i], plans[j]
		if a.Score.MatchCount != b.Score.MatchCount {
			return a.Score.MatchCount > b.Score.MatchCount
		}
		if a.Dungeon != b.Dungeon {
			return a.Dungeon < b.Dungeon
		}
		if len(a.Filter.BaseCandidates) != len(b.Filter.BaseCandidates) {
			return len(a.Filter.BaseCandidates) < len(b.Filter.BaseCandidates)
		}
		if a.Filter.FixedSlot != b.Filter.FixedSlot {
			return a.Filter.FixedSlot < b.Filter.FixedSlot
		}
		return a.Filter.FixedValue < b.Filter.FixedValue
	})
}
