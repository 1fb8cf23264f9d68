package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sidingcalc-cli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sidingcalc-cli v%s\n", Version)
		fmt.Println("Siding Area Estimator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
