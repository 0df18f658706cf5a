package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/essence-api/internal/handlers/planner/v1alpha1"
)

var searchFlags struct {
	topN           int
	excludeUnowned bool
	excludeDone    bool
	planIndex      int
	runs           int
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [item-name]",
	Short: "Rank farm plans for a weapon",
	Long: `Rank dungeon runs and narrowing filters for one weapon. Examples:

  recommend "Sword-Steel Echo"
  recommend "Sword-Steel Echo" --player p1 --exclude-done --top-n 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodRecommendPlans, withPlayer(map[string]interface{}{
			"item_name":       args[0],
			"top_n":           searchFlags.topN,
			"exclude_unowned": searchFlags.excludeUnowned,
			"exclude_done":    searchFlags.excludeDone,
		}))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [base] [bonus] [skill]",
	Short: "Find weapons with exactly these attributes",
	Long: `Each attribute is a code or a label. Examples:

  lookup 1 5 9
  lookup "Agility Boost" "ATK Boost" Assault`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodFindItems, withPlayer(map[string]interface{}{
			"base":            attributeArg(args[0]),
			"bonus":           attributeArg(args[1]),
			"skill":           attributeArg(args[2]),
			"exclude_unowned": searchFlags.excludeUnowned,
			"exclude_done":    searchFlags.excludeDone,
		}))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

var lastSearchCmd = &cobra.Command{
	Use:   "last-search",
	Short: "Show the player's cached search",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePlayer(); err != nil {
			return err
		}
		resp, err := call(v1alpha1.MethodGetLastSearch, withPlayer(map[string]interface{}{}))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [item-name]",
	Short: "Roll drops under one of a weapon's plans",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodSimulatePlan, withPlayer(map[string]interface{}{
			"item_name":       args[0],
			"plan_index":      searchFlags.planIndex,
			"runs":            searchFlags.runs,
			"exclude_unowned": searchFlags.excludeUnowned,
			"exclude_done":    searchFlags.excludeDone,
		}))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

var itemsCmd = &cobra.Command{
	Use:   "items [category]",
	Short: "List catalog weapons by category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]interface{}{}
		if len(args) == 1 {
			fields["category"] = args[0]
		}
		resp, err := call(v1alpha1.MethodListItems, fields)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{recommendCmd, lookupCmd, simulateCmd} {
		cmd.Flags().BoolVar(&searchFlags.excludeUnowned, "exclude-unowned", false, "ignore weapons not marked owned")
		cmd.Flags().BoolVar(&searchFlags.excludeDone, "exclude-done", false, "ignore weapons marked done")
	}
	recommendCmd.Flags().IntVar(&searchFlags.topN, "top-n", 0, "number of plans; 0 uses the server default")
	simulateCmd.Flags().IntVar(&searchFlags.planIndex, "plan", 0, "zero based plan index")
	simulateCmd.Flags().IntVar(&searchFlags.runs, "runs", 100, "number of simulated runs")
}
