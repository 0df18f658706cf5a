package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/essence-api/internal/catalog"
	"github.com/KirkDiggler/essence-api/internal/engine/essence"
	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/orchestrators/planner"
	"github.com/KirkDiggler/essence-api/internal/pkg/clock"
	searchcache "github.com/KirkDiggler/essence-api/internal/repositories/search_cache"
)

// localPlayer owns the state imported by the offline commands
const localPlayer = "local"

// planOptions is everything the plan flags control
type planOptions struct {
	catalogPath    string
	statePath      string
	topN           int
	maxBase        int
	excludeUnowned bool
	excludeDone    bool
}

// Validate rejects counts the planner would silently reinterpret
func (o *planOptions) Validate() error {
	vb := errors.NewValidationBuilder()
	if o.topN < 1 {
		vb.Field("top-n", "must be at least 1")
	}
	if o.maxBase < 1 {
		vb.Field("max-base-candidates", "must be at least 1")
	}
	return vb.Build()
}

var planFlags planOptions

var planCmd = &cobra.Command{
	Use:   "plan [item-name]",
	Short: "Recommend farm plans without a server",
	Long: `Rank farm plans for one weapon against the catalog, in process.

  plan "Sword-Steel Echo"
  plan "Sword-Steel Echo" --state ownership.json --exclude-done`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planFlags.catalogPath, "catalog", "", "YAML catalog file; empty uses the built-in catalog")
	f.StringVar(&planFlags.statePath, "state", "", "ownership export to load before planning")
	f.IntVar(&planFlags.topN, "top-n", essence.DefaultTopN, "number of plans to show")
	f.IntVar(&planFlags.maxBase, "max-base-candidates", essence.DefaultMaxBaseCandidates, "largest base-candidate subset tried")
	f.BoolVar(&planFlags.excludeUnowned, "exclude-unowned", false, "ignore weapons not marked owned")
	f.BoolVar(&planFlags.excludeDone, "exclude-done", false, "ignore weapons marked done")
}

func runPlan(cmd *cobra.Command, args []string) error {
	if err := planFlags.Validate(); err != nil {
		return err
	}
	ctx := context.Background()

	cfg := serverConfig{
		Store:             StoreMemory,
		TopN:              essence.DefaultTopN,
		MaxBaseCandidates: planFlags.maxBase,
		SearchTTL:         searchcache.DefaultTTL,
	}

	cat, err := loadCatalog(planFlags.catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	st, err := openStores(ctx, &cfg, clock.New())
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := newPlanner(&cfg, cat, st)
	if err != nil {
		return err
	}

	if planFlags.statePath != "" {
		data, err := os.ReadFile(planFlags.statePath)
		if err != nil {
			return fmt.Errorf("failed to read state: %w", err)
		}
		imported, err := svc.ImportOwnership(ctx, &planner.ImportOwnershipInput{PlayerID: localPlayer, JSON: data})
		if err != nil {
			return fmt.Errorf("failed to import state: %w", err)
		}
		if len(imported.Ignored) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "ignored unknown items: %s\n", strings.Join(imported.Ignored, ", "))
		}
	}

	out, err := svc.RecommendPlans(ctx, &planner.RecommendPlansInput{
		PlayerID:       localPlayer,
		ItemName:       args[0],
		TopN:           planFlags.topN,
		ExcludeUnowned: planFlags.excludeUnowned,
		ExcludeDone:    planFlags.excludeDone,
	})
	if err != nil {
		return err
	}

	printPlans(cmd.OutOrStdout(), out)
	return nil
}

// printPlans writes a human readable plan listing
func printPlans(w io.Writer, out *planner.RecommendPlansOutput) {
	if len(out.Plans) == 0 {
		fmt.Fprintf(w, "No plans for %s.\n", out.ItemName)
		if len(out.Suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(out.Suggestions, ", "))
		}
		return
	}

	fmt.Fprintf(w, "Plans for %s:\n", out.ItemName)
	for i, plan := range out.Plans {
		fmt.Fprintf(w, "\n%d. %s (%d matching)\n", i+1, plan.Dungeon, plan.Score.MatchCount)
		fmt.Fprintf(w, "   Base:  %s\n", baseList(plan.Filter.BaseCandidates))
		fmt.Fprintf(w, "   Fixed: %s = %s\n", plan.Filter.FixedSlot,
			catalog.SlotLabel(plan.Filter.FixedSlot, plan.Filter.FixedValue))
		for _, item := range plan.Others(out.ItemName) {
			fmt.Fprintf(w, "   Also:  %s\n", item.Name)
		}
	}
}

func baseList(codes []entities.AttributeCode) string {
	labels := make([]string, 0, len(codes))
	for _, c := range codes {
		labels = append(labels, catalog.BaseLabel(c))
	}
	return strings.Join(labels, ", ")
}
