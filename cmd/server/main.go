// Package main is the entry point for the essence planner
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/essence-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "essence-api",
	Short: "Essence farming planner",
	Long: `Essence API recommends dungeon runs and narrowing filters for farming
weapon essences, and tracks which weapons each player owns or has finished.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
