// Package main is the entry point for the dndrpg CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dndrpg",
	Short: "d20 rules-resolution engine",
	Long:  `dndrpg resolves d20 combat rules: effects, stacking, saves, damage reduction, and the round clock, with a full explain trace for every ruling.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
