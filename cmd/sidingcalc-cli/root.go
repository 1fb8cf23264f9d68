package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sidingcalc-cli",
	Short: "Siding area and material estimator",
	Long: `sidingcalc-cli - Siding Area Estimator

A CLI companion to the SidingCalc desktop application for estimating
exterior siding material from wall measurements.

This tool helps estimators perform:
  - Plan-drawing point to feet/inch conversions
  - Panel counts for a wall area with waste allowance
  - Full material estimates from CSV, Excel, or DXF wall schedules
  - Structure template listings for quick starts

Measurements accept feet/inch notation such as 24', 8' 6", or 102.5.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  sidingcalc-cli v%s\n", Version)
		fmt.Println("  Siding Area Estimator")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Plan-point and feet/inch unit conversions")
		fmt.Println("    • Panel counts with waste allowance")
		fmt.Println("    • Estimates from CSV, Excel, and DXF wall schedules")
		fmt.Println("    • Built-in structure templates")
		fmt.Println()
		fmt.Println("  Use 'sidingcalc-cli --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
