package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sidingworks/sidingcalc/internal/estimate"
	"github.com/sidingworks/sidingcalc/internal/export"
	"github.com/sidingworks/sidingcalc/internal/importer"
	"github.com/sidingworks/sidingcalc/internal/model"
	"github.com/sidingworks/sidingcalc/internal/project"
	"github.com/sidingworks/sidingcalc/internal/report"
)

var (
	estimateInput    string
	estimateTemplate string
	estimateProduct  string
	estimateWaste   float64
	estimateCourses bool
	estimateNoTrim  bool
	estimateScale   bool
	estimatePDF     string
	estimateExcel   string
	estimateLabels  string
	estimateOut     string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate siding material from a wall schedule",
	Long: `Estimate siding material from a wall schedule or elevation drawing.

The input format is chosen by file extension: .csv and .xlsx files are
read as wall schedules, .dxf files as elevation drawings. A built-in
structure template can stand in for a file. The product is looked up by
name in the saved catalog (~/.sidingcalc/catalog.json).

Examples:
  # Estimate from a CSV schedule with the default product
  sidingcalc-cli estimate --input walls.csv

  # Estimate a built-in template
  sidingcalc-cli estimate --template "Garden Shed 8x12"

  # Lap siding by courses, 15% waste, PDF output
  sidingcalc-cli estimate --input walls.xlsx \
    --product "Fiber Cement Lap 8.25\" x 12'" --courses --waste 0.15 \
    --pdf takeoff.pdf`,
	Run: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().StringVarP(&estimateInput, "input", "i", "", "Wall schedule (.csv, .xlsx) or elevation drawing (.dxf)")
	estimateCmd.Flags().StringVarP(&estimateTemplate, "template", "t", "", "Built-in structure template name instead of a file")
	estimateCmd.Flags().StringVarP(&estimateProduct, "product", "p", "", "Catalog product name (default: first product)")
	estimateCmd.Flags().Float64VarP(&estimateWaste, "waste", "w", 0.10, "Waste fraction (0.10 for 10%)")
	estimateCmd.Flags().BoolVarP(&estimateCourses, "courses", "c", false, "Estimate lap siding by courses")
	estimateCmd.Flags().BoolVar(&estimateNoTrim, "no-trim", false, "Skip the trim takeoff")
	estimateCmd.Flags().BoolVar(&estimateScale, "plan-scale", false, "Treat DXF units as plan points instead of inches")
	estimateCmd.Flags().StringVar(&estimatePDF, "pdf", "", "Also write a PDF takeoff to this path")
	estimateCmd.Flags().StringVar(&estimateExcel, "xlsx", "", "Also write an Excel workbook to this path")
	estimateCmd.Flags().StringVar(&estimateLabels, "labels", "", "Also write wall label sheets to this path")
	estimateCmd.Flags().StringVarP(&estimateOut, "out", "o", "", "Write the text report to this path instead of stdout")
}

func runEstimate(cmd *cobra.Command, args []string) {
	if estimateInput == "" && estimateTemplate == "" {
		fmt.Println("Error: provide --input or --template.")
		fmt.Println("Use 'sidingcalc-cli estimate --help' for usage information.")
		return
	}

	var walls []model.WallPlan
	var name string
	if estimateTemplate != "" {
		tmpl := model.FindTemplate(model.BuiltinTemplates(), estimateTemplate)
		if tmpl == nil {
			fmt.Printf("Error: no template named %q. Use 'sidingcalc-cli templates' to list them.\n", estimateTemplate)
			return
		}
		walls = tmpl.Instantiate()
		name = tmpl.Name
	} else {
		var result importer.ImportResult
		switch strings.ToLower(filepath.Ext(estimateInput)) {
		case ".csv":
			result = importer.ImportCSV(estimateInput)
		case ".xlsx":
			result = importer.ImportExcel(estimateInput)
		case ".dxf":
			if estimateScale {
				result = importer.ImportDXFScaled(estimateInput, model.InchesPerPoint)
			} else {
				result = importer.ImportDXF(estimateInput)
			}
		default:
			fmt.Printf("Error: unsupported input format %q\n", filepath.Ext(estimateInput))
			return
		}

		for _, e := range result.Errors {
			fmt.Printf("Error: %s\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		walls = result.Walls
		name = strings.TrimSuffix(filepath.Base(estimateInput), filepath.Ext(estimateInput))
	}
	if len(walls) == 0 {
		fmt.Println("No walls imported, nothing to estimate.")
		return
	}

	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		fmt.Printf("Warning: could not load catalog: %v\n", err)
		catalog = model.DefaultCatalog()
	}

	takeoff := model.NewTakeoff()
	takeoff.Name = name
	takeoff.Walls = walls
	takeoff.Settings.WasteFraction = estimateWaste
	takeoff.Settings.IncludeTrim = !estimateNoTrim
	if estimateCourses {
		takeoff.Settings.Method = model.MethodCourses
	}
	if estimateProduct != "" {
		p := catalog.FindByName(estimateProduct)
		if p == nil {
			fmt.Printf("Error: product %q not in catalog. Known products:\n", estimateProduct)
			for _, name := range catalog.Names() {
				fmt.Printf("  %s\n", name)
			}
			return
		}
		takeoff.Product = *p
	} else if len(catalog.Products) > 0 {
		takeoff.Product = catalog.Products[0]
	}

	est, err := estimate.New(takeoff.Settings).EstimateTakeoff(takeoff)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	text := report.New(takeoff.Settings).Generate(takeoff, est)
	if estimateOut != "" {
		if err := project.SaveReport(estimateOut, text); err != nil {
			fmt.Printf("Error: could not write report: %v\n", err)
			return
		}
		fmt.Printf("Report written to %s\n", estimateOut)
	} else {
		fmt.Print(text)
	}

	if estimatePDF != "" {
		if err := export.ExportPDF(estimatePDF, takeoff, est); err != nil {
			fmt.Printf("Error: PDF export failed: %v\n", err)
		} else {
			fmt.Printf("PDF written to %s\n", estimatePDF)
		}
	}
	if estimateExcel != "" {
		if err := export.ExportExcel(estimateExcel, takeoff, est); err != nil {
			fmt.Printf("Error: Excel export failed: %v\n", err)
		} else {
			fmt.Printf("Workbook written to %s\n", estimateExcel)
		}
	}
	if estimateLabels != "" {
		if err := export.ExportLabels(estimateLabels, takeoff); err != nil {
			fmt.Printf("Error: label export failed: %v\n", err)
		} else {
			fmt.Printf("Labels written to %s\n", estimateLabels)
		}
	}
}
