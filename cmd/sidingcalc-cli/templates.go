package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sidingworks/sidingcalc/internal/model"
)

var templatesShow string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in structure templates",
	Long: `List the built-in structure templates, or show one in detail.

Templates are reusable wall sets for common building shapes. The desktop
app instantiates them from the File menu; this command prints their wall
measurements for reference.

Examples:
  sidingcalc-cli templates
  sidingcalc-cli templates --show "Gabled Ranch 28x40"`,
	Run: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().StringVarP(&templatesShow, "show", "s", "", "Show the walls of one template")
}

func runTemplates(cmd *cobra.Command, args []string) {
	templates := model.BuiltinTemplates()

	if templatesShow != "" {
		tmpl := model.FindTemplate(templates, templatesShow)
		if tmpl == nil {
			fmt.Printf("Error: no template named %q. Known templates:\n", templatesShow)
			for _, name := range model.TemplateNames(templates) {
				fmt.Printf("  %s\n", name)
			}
			return
		}

		fmt.Println()
		fmt.Printf("  %s\n", tmpl.Name)
		fmt.Printf("  %s\n", tmpl.Description)
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Wall\tDirection\tSections\tOpenings\tNet Area\n")
		for _, wp := range tmpl.Walls {
			area := "—"
			if sqIn, err := wp.SidingAreaSqIn(); err == nil {
				area = model.SquareInchesToFeetInches(sqIn).String()
			}
			fmt.Fprintf(w, "  %s\t%s\t%d\t%d\t%s\n",
				wp.Label, wp.Direction, len(wp.Sections), len(wp.Openings), area)
		}
		w.Flush()
		fmt.Println()
		return
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Template\tWalls\tDescription\n")
	for _, t := range templates {
		fmt.Fprintf(w, "  %s\t%d\t%s\n", t.Name, len(t.Walls), t.Description)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Use 'sidingcalc-cli templates --show <name>' for wall details.")
	fmt.Println()
}
