package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidingworks/sidingcalc/internal/model"
)

var (
	panelsWidth    string
	panelsHeight   string
	panelsOpenings []string
	panelsCoverage float64
	panelsWaste    float64
)

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "Count siding panels for a single wall",
	Long: `Count the siding panels needed to cover one rectangular wall.

Width and height accept feet/inch notation. Openings subtract from the
gross area before the waste allowance inflates it and the result rounds
up to whole panels.

Examples:
  # 24' x 8' wall with a door and a window, 4x8 panels, 10% waste
  sidingcalc-cli panels --width "24'" --height "8'" \
    --opening 36x80 --opening 35x59 --coverage 32 --waste 0.10`,
	Run: runPanels,
}

func init() {
	rootCmd.AddCommand(panelsCmd)

	panelsCmd.Flags().StringVarP(&panelsWidth, "width", "W", "", "Wall width (feet/inch notation)")
	panelsCmd.Flags().StringVarP(&panelsHeight, "height", "H", "", "Wall height (feet/inch notation)")
	panelsCmd.Flags().StringArrayVarP(&panelsOpenings, "opening", "o", nil, "Opening as WxH in inches (repeatable)")
	panelsCmd.Flags().Float64VarP(&panelsCoverage, "coverage", "c", 32, "Panel coverage in sq ft")
	panelsCmd.Flags().Float64VarP(&panelsWaste, "waste", "w", 0.10, "Waste fraction (0.10 for 10%)")
}

func runPanels(cmd *cobra.Command, args []string) {
	if panelsWidth == "" || panelsHeight == "" {
		fmt.Println("Error: --width and --height are required.")
		fmt.Println("Use 'sidingcalc-cli panels --help' for usage information.")
		return
	}

	width, err := model.ParseDimension(panelsWidth)
	if err != nil {
		fmt.Printf("Error: invalid width: %v\n", err)
		return
	}
	height, err := model.ParseDimension(panelsHeight)
	if err != nil {
		fmt.Printf("Error: invalid height: %v\n", err)
		return
	}

	wall := model.NewWall()
	wall.AddSection(model.NewRectSection(width, height))
	for _, spec := range panelsOpenings {
		var ow, oh float64
		if _, err := fmt.Sscanf(spec, "%fx%f", &ow, &oh); err != nil {
			fmt.Printf("Error: invalid opening %q, expected WxH\n", spec)
			return
		}
		wall.AddOpening(model.NewOpening(ow, oh))
	}

	panels, err := wall.PanelsNeeded(panelsCoverage, panelsWaste)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	net := wall.SidingAreaFeetInches()
	fmt.Println()
	fmt.Printf("  Gross area:   %s\n", model.SquareInchesToFeetInches(wall.SectionAreaSqIn()).String())
	fmt.Printf("  Openings:     %d (%s)\n", len(wall.Openings()),
		model.SquareInchesToFeetInches(wall.OpeningAreaSqIn()).String())
	fmt.Printf("  Net area:     %s\n", net.String())
	fmt.Printf("  Panels (%.0f sq ft each, +%.0f%% waste): %d\n",
		panelsCoverage, panelsWaste*100, panels)
	fmt.Println()
}
