// Package main is the entry point for the combat simulator CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tactics-sim",
	Short: "Tactics engine combat simulator",
	Long:  `Runs scripted skirmishes through the combat resolution pipeline and prints the combat log.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
