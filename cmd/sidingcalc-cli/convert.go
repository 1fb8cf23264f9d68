package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidingworks/sidingcalc/internal/model"
)

var (
	convertPoints      float64
	convertDimension   string
	convertDenominator int
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between plan-drawing points and feet/inches",
	Long: `Convert measurements between plan-drawing points and feet/inches.

Plan drawings measure in "points"; the calibrated scale converts them
to real-world inches. Display inches round to the nearest fraction set
by --denominator (16 for sixteenths).

Examples:
  # Points to feet and inches
  sidingcalc-cli convert --points 689

  # Feet/inch notation back to points
  sidingcalc-cli convert --dimension "45' 2.375\""

  # Round to eighths instead of sixteenths
  sidingcalc-cli convert --points 689 --denominator 8`,
	Run: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().Float64VarP(&convertPoints, "points", "p", 0, "Measurement in plan points")
	convertCmd.Flags().StringVarP(&convertDimension, "dimension", "d", "", `Measurement in feet/inch notation (e.g. "8' 6-1/2\"")`)
	convertCmd.Flags().IntVar(&convertDenominator, "denominator", model.DefaultRoundDenominator, "Round inches to the nearest 1/denominator")
}

func runConvert(cmd *cobra.Command, args []string) {
	switch {
	case convertPoints != 0:
		fi := model.PointsToFeetInches(convertPoints, convertDenominator)
		fmt.Printf("%.4g points = %s (%.4f in)\n",
			convertPoints, fi.String(), convertPoints*model.InchesPerPoint)
	case convertDimension != "":
		inches, err := model.ParseDimension(convertDimension)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		points := inches * model.PointsPerInch
		fmt.Printf("%s = %.4f in = %.4f points\n", convertDimension, inches, points)
	default:
		fmt.Println("Error: provide --points or --dimension.")
		fmt.Println("Use 'sidingcalc-cli convert --help' for usage information.")
	}
}
