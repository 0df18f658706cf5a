package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/essence-api/internal/handlers/planner/v1alpha1"
)

var ownershipFlags struct {
	owned  bool
	done   bool
	output string
}

var ownershipCmd = &cobra.Command{
	Use:   "ownership",
	Short: "Read and change a player's owned and done flags",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requirePlayer()
	},
}

var ownershipGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the player's flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodGetOwnership, withPlayer(map[string]interface{}{}))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

var ownershipSetCmd = &cobra.Command{
	Use:   "set [item-name]",
	Short: "Set one weapon's flags; --done implies --owned",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodUpdateOwnership, withPlayer(map[string]interface{}{
			"item_name": args[0],
			"owned":     ownershipFlags.owned,
			"done":      ownershipFlags.done,
		}))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

var ownershipResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every flag for the player",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := call(v1alpha1.MethodResetOwnership, withPlayer(map[string]interface{}{})); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Ownership reset for %s\n", playerID)
		return nil
	},
}

var ownershipExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the player's flags as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := call(v1alpha1.MethodExportOwnership, withPlayer(map[string]interface{}{}))
		if err != nil {
			return err
		}
		doc := resp.GetFields()["json"].GetStringValue()
		if ownershipFlags.output == "" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), doc)
			return err
		}
		return os.WriteFile(ownershipFlags.output, []byte(doc), 0o600)
	},
}

var ownershipImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the player's flags from an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		resp, err := call(v1alpha1.MethodImportOwnership, withPlayer(map[string]interface{}{
			"json": string(data),
		}))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

func init() {
	ownershipSetCmd.Flags().BoolVar(&ownershipFlags.owned, "owned", false, "mark the weapon owned")
	ownershipSetCmd.Flags().BoolVar(&ownershipFlags.done, "done", false, "mark the weapon's essence obtained")
	ownershipExportCmd.Flags().StringVarP(&ownershipFlags.output, "output", "o", "", "file to write; stdout when empty")

	ownershipCmd.AddCommand(ownershipGetCmd)
	ownershipCmd.AddCommand(ownershipSetCmd)
	ownershipCmd.AddCommand(ownershipResetCmd)
	ownershipCmd.AddCommand(ownershipExportCmd)
	ownershipCmd.AddCommand(ownershipImportCmd)
}
