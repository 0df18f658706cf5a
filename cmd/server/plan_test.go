package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/orchestrators/planner"
	"github.com/KirkDiggler/essence-api/internal/testutils"
)

func TestPrintPlans(t *testing.T) {
	items := testutils.FixtureItems()
	out := &planner.RecommendPlansOutput{
		ItemName: testutils.ItemA,
		Plans: []entities.FarmPlan{{
			Dungeon: testutils.FixtureDungeon,
			Filter: entities.NarrowingFilter{
				Dungeon:        testutils.FixtureDungeon,
				BaseCandidates: []entities.AttributeCode{1, 2},
				FixedSlot:      entities.FixedSlotBonus,
				FixedValue:     5,
			},
			Matched: items[:2],
			Score:   entities.PlanScore{MatchCount: 2, NegCandidates: -2},
		}},
	}

	var buf bytes.Buffer
	printPlans(&buf, out)

	text := buf.String()
	assert.Contains(t, text, "1. Test Cave (2 matching)")
	assert.Contains(t, text, "Base:  Agility Boost, Strength Boost")
	assert.Contains(t, text, "Also:  Sword-B")
	assert.NotContains(t, text, "Also:  Sword-A")
}

func TestPrintPlansSuggestions(t *testing.T) {
	var buf bytes.Buffer
	printPlans(&buf, &planner.RecommendPlansOutput{ItemName: "Sword-Q", Suggestions: []string{"Sword-A"}})
	assert.Contains(t, buf.String(), "No plans for Sword-Q.")
	assert.Contains(t, buf.String(), "Did you mean: Sword-A?")
}

func TestPlanOptionsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		opts    planOptions
		wantErr string
	}{
		{name: "defaults", opts: planOptions{topN: 5, maxBase: 3}},
		{name: "zero top-n", opts: planOptions{topN: 0, maxBase: 3}, wantErr: "top-n"},
		{name: "negative top-n", opts: planOptions{topN: -1, maxBase: 3}, wantErr: "top-n"},
		{name: "zero max base", opts: planOptions{topN: 5, maxBase: 0}, wantErr: "max-base-candidates"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestPlanCommandRejectsZeroTopN(t *testing.T) {
	saved := planFlags
	defer func() { planFlags = saved }()
	planFlags = planOptions{topN: 0, maxBase: 3}

	var out bytes.Buffer
	planCmd.SetOut(&out)
	defer planCmd.SetOut(nil)

	err := runPlan(planCmd, []string{testutils.ItemA})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-n")
	assert.Empty(t, out.String())
}
