package essence

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_roller.go -package=essencemock github.com/KirkDiggler/essence-api/internal/engine/essence Roller

// Roller picks a uniform value in [1, sides]
type Roller interface {
	Roll(sides int) (int, error)
}

// ToolkitRoller rolls with rpg-toolkit dice
type ToolkitRoller struct{}

// Roll rolls a single die with the given number of sides
func (ToolkitRoller) Roll(sides int) (int, error) {
	roll, err := dice.NewRoll(1, sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create %d-sided roll", sides)
	}
	return roll.GetValue(), nil
}

// SimulatedDrop is one rolled essence under a filter
type SimulatedDrop struct {
	Base  entities.AttributeCode
	Bonus entities.AttributeCode
	Skill entities.AttributeCode
}

// SimulationResult summarises a batch of simulated runs
type SimulationResult struct {
	Runs  int
	Drops []SimulatedDrop

	// Hits counts, per matched item, the runs that produced its essence
	Hits map[string]int

	// Chance is the per-run probability of each matched item's essence
	Chance map[string]float64
}

// SimulateRuns rolls runs drops from the dungeon under the plan's filter.
// The base comes uniformly from the filter's candidates, the pinned slot is
// fixed and the free slot comes uniformly from the dungeon's admissible set.
func SimulateRuns(plan *entities.FarmPlan, dungeon *entities.Dungeon, runs int, roller Roller) (*SimulationResult, error) {
	if plan == nil || dungeon == nil {
		return nil, errors.InvalidArgument("plan and dungeon are required")
	}
	if runs <= 0 {
		return nil, errors.InvalidArgumentf("runs must be positive, got %d", runs)
	}
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	filter := plan.Filter
	if filter.Dungeon != dungeon.Name {
		return nil, errors.InvalidArgumentf("plan targets %s, not %s", filter.Dungeon, dungeon.Name)
	}
	if len(filter.BaseCandidates) == 0 {
		return nil, errors.InvalidArgument("plan has no base candidates")
	}

	freeSlot := filter.FixedSlot.Other()
	freeCodes := dungeon.SlotDrops(freeSlot).Codes()
	if len(freeCodes) == 0 {
		return nil, errors.FailedPrecondition("dungeon drops nothing in the free slot")
	}

	result := &SimulationResult{
		Runs:   runs,
		Drops:  make([]SimulatedDrop, 0, runs),
		Hits:   make(map[string]int, len(plan.Matched)),
		Chance: make(map[string]float64, len(plan.Matched)),
	}

	perRun := 1 / float64(len(filter.BaseCandidates)*len(freeCodes))
	for _, item := range plan.Matched {
		result.Hits[item.Name] = 0
		result.Chance[item.Name] = perRun
	}

	for i := 0; i < runs; i++ {
		baseRoll, err := roller.Roll(len(filter.BaseCandidates))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll base attribute")
		}
		freeRoll, err := roller.Roll(len(freeCodes))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll free slot")
		}
		if baseRoll < 1 || baseRoll > len(filter.BaseCandidates) || freeRoll < 1 || freeRoll > len(freeCodes) {
			return nil, errors.Internalf("roller returned out-of-range values %d, %d", baseRoll, freeRoll)
		}

		drop := SimulatedDrop{Base: filter.BaseCandidates[baseRoll-1]}
		if filter.FixedSlot == entities.FixedSlotBonus {
			drop.Bonus = filter.FixedValue
			drop.Skill = freeCodes[freeRoll-1]
		} else {
			drop.Skill = filter.FixedValue
			drop.Bonus = freeCodes[freeRoll-1]
		}
		result.Drops = append(result.Drops, drop)

		for _, item := range plan.Matched {
			if item.Base == drop.Base && item.Bonus == drop.Bonus && item.Skill == drop.Skill {
				result.Hits[item.Name]++
			}
		}
	}

	return result, nil
}
