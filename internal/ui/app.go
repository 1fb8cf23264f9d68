package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/sidingworks/sidingcalc/internal/estimate"
	"github.com/sidingworks/sidingcalc/internal/export"
	wallimporter "github.com/sidingworks/sidingcalc/internal/importer"
	"github.com/sidingworks/sidingcalc/internal/model"
	"github.com/sidingworks/sidingcalc/internal/project"
	"github.com/sidingworks/sidingcalc/internal/report"
	"github.com/sidingworks/sidingcalc/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window      fyne.Window
	takeoff     model.Takeoff
	catalog     model.Catalog
	catalogPath string
	config      model.AppConfig
	history     *History
	estimate    *model.SidingEstimate
	tabs        *container.AppTabs

	// UI references for dynamic updates
	wallsContainer  *fyne.Container
	resultContainer *fyne.Container
}

func NewApp(window fyne.Window) *App {
	config, _ := project.LoadAppConfig(project.DefaultConfigPath())
	catalog, catalogPath, _ := project.LoadOrCreateCatalog()

	takeoff := model.NewTakeoff()
	config.ApplyToSettings(&takeoff.Settings)
	if p := catalog.FindByName(config.DefaultProductName); p != nil {
		takeoff.Product = *p
	}

	return &App{
		window:      window,
		takeoff:     takeoff,
		catalog:     catalog,
		catalogPath: catalogPath,
		config:      config,
		history:     NewHistory(),
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	templateItems := []*fyne.MenuItem{}
	for _, t := range model.BuiltinTemplates() {
		tmpl := t // capture
		templateItems = append(templateItems, fyne.NewMenuItem(tmpl.Name, func() {
			a.pushHistory("Apply Template")
			a.takeoff.Walls = append(a.takeoff.Walls, tmpl.Instantiate()...)
			a.refreshWallsList()
		}))
	}
	templatesMenu := fyne.NewMenuItem("New from Template", nil)
	templatesMenu.ChildMenu = fyne.NewMenu("", templateItems...)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Takeoff", func() {
			a.takeoff = model.NewTakeoff()
			a.config.ApplyToSettings(&a.takeoff.Settings)
			if p := a.catalog.FindByName(a.config.DefaultProductName); p != nil {
				a.takeoff.Product = *p
			}
			a.estimate = nil
			a.history.Clear()
			a.refreshWallsList()
			a.refreshResults()
		}),
		templatesMenu,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Walls from CSV...", func() {
			a.importWalls(wallimporter.ImportCSV)
		}),
		fyne.NewMenuItem("Import Walls from Excel...", func() {
			a.importWalls(wallimporter.ImportExcel)
		}),
		fyne.NewMenuItem("Import Elevations from DXF...", func() {
			a.importWalls(wallimporter.ImportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportWithEstimate("takeoff.pdf", func(path string) error {
				return export.ExportPDF(path, a.takeoff, a.estimate)
			})
		}),
		fyne.NewMenuItem("Export Excel...", func() {
			a.exportWithEstimate("takeoff.xlsx", func(path string) error {
				return export.ExportExcel(path, a.takeoff, a.estimate)
			})
		}),
		fyne.NewMenuItem("Export Wall Labels...", func() {
			a.exportWithEstimate("labels.pdf", func(path string) error {
				return export.ExportLabels(path, a.takeoff)
			})
		}),
		fyne.NewMenuItem("Export Text Report...", func() {
			a.exportWithEstimate("estimate.txt", func(path string) error {
				text := report.New(a.takeoff.Settings).Generate(a.takeoff, a.estimate)
				return project.SaveReport(path, text)
			})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() { a.undo() }),
		fyne.NewMenuItem("Redo", func() { a.redo() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Walls", func() {
			a.pushHistory("Clear All Walls")
			a.takeoff.Walls = nil
			a.refreshWallsList()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Estimate", func() {
			a.runEstimate()
			a.tabs.SelectIndex(2) // Switch to Results tab
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Settings Backup...", func() {
			a.exportBackup()
		}),
		fyne.NewMenuItem("Import Settings Backup...", func() {
			a.importBackup()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About SidingCalc",
		"SidingCalc — Siding Area Estimator\n\n"+
			"A cross-platform desktop application for measuring wall\n"+
			"elevations and estimating siding material orders.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	wallsTab := container.NewTabItem("Walls", a.buildWallsPanel())
	settingsTab := container.NewTabItem("Product & Settings", a.buildSettingsPanel())
	resultsTab := container.NewTabItem("Results", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(wallsTab, settingsTab, resultsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

func (a *App) pushHistory(label string) {
	a.history.Push(MakeSnapshot(a.takeoff.Walls, label))
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.takeoff.Walls, "current"))
	if !ok {
		return
	}
	a.takeoff.Walls = snap.Walls
	a.refreshWallsList()
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.takeoff.Walls, "current"))
	if !ok {
		return
	}
	a.takeoff.Walls = snap.Walls
	a.refreshWallsList()
}

// ─── Walls Panel ───────────────────────────────────────────

func (a *App) buildWallsPanel() fyne.CanvasObject {
	a.wallsContainer = container.NewVBox()
	a.refreshWallsList()

	addBtn := widget.NewButtonWithIcon("Add Wall", theme.ContentAddIcon(), func() {
		a.showAddWallDialog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Walls", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.wallsContainer),
	)
}

func (a *App) refreshWallsList() {
	a.wallsContainer.RemoveAll()

	if len(a.takeoff.Walls) == 0 {
		a.wallsContainer.Add(widget.NewLabel("No walls added yet. Click 'Add Wall' to begin."))
		return
	}

	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Direction", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Sections", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Net Area", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.wallsContainer.Add(header)
	a.wallsContainer.Add(widget.NewSeparator())

	for i := range a.takeoff.Walls {
		idx := i // capture
		wp := a.takeoff.Walls[idx]

		descs := make([]string, len(wp.Sections))
		for j, sp := range wp.Sections {
			descs[j] = sp.Describe()
		}
		areaText := "—"
		if area, err := wp.SidingAreaSqIn(); err == nil {
			areaText = model.SquareInchesToFeetInches(area).String()
		}

		row := container.NewGridWithColumns(6,
			widget.NewLabel(wp.Label),
			widget.NewLabel(wp.Direction),
			widget.NewLabel(strings.Join(descs, "; ")),
			widget.NewLabel(areaText),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditWallDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.pushHistory("Delete Wall")
				a.takeoff.Walls = append(a.takeoff.Walls[:idx], a.takeoff.Walls[idx+1:]...)
				a.refreshWallsList()
			}),
		)
		a.wallsContainer.Add(row)
	}
}

// wallFormValues collects the dialog entries shared by add and edit.
type wallFormValues struct {
	label     *widget.Entry
	direction *widget.Select
	width     *widget.Entry
	height    *widget.Entry
	gable     *widget.Check
	pitch     *widget.Entry
	openings  *widget.Entry
}

func newWallFormValues() wallFormValues {
	v := wallFormValues{
		label:     widget.NewEntry(),
		direction: widget.NewSelect([]string{"north", "south", "east", "west", "front", "back", "left", "right"}, nil),
		width:     widget.NewEntry(),
		height:    widget.NewEntry(),
		gable:     widget.NewCheck("", nil),
		pitch:     widget.NewEntry(),
		openings:  widget.NewEntry(),
	}
	v.width.SetPlaceHolder(`e.g. 24' or 288"`)
	v.height.SetPlaceHolder(`e.g. 8' or 96"`)
	v.pitch.SetPlaceHolder("e.g. 6/12")
	v.openings.SetPlaceHolder(`e.g. 36x80; 35x59`)
	return v
}

func (v wallFormValues) formItems() []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem("Label", v.label),
		widget.NewFormItem("Direction", v.direction),
		widget.NewFormItem("Width", v.width),
		widget.NewFormItem("Wall Height", v.height),
		widget.NewFormItem("Gable Above", v.gable),
		widget.NewFormItem("Roof Pitch", v.pitch),
		widget.NewFormItem("Openings (WxH; ...)", v.openings),
	}
}

// buildWallPlan turns the form entries into a WallPlan. Dimensions accept
// feet/inch notation via ParseDimension.
func (v wallFormValues) buildWallPlan(id string) (model.WallPlan, error) {
	wp := model.NewWallPlan(strings.TrimSpace(v.label.Text), v.direction.Selected)
	if id != "" {
		wp.ID = id
	}
	if wp.Label == "" {
		return wp, fmt.Errorf("wall needs a label")
	}

	width, err := model.ParseDimension(v.width.Text)
	if err != nil || width <= 0 {
		return wp, fmt.Errorf("invalid width %q", v.width.Text)
	}
	height, err := model.ParseDimension(v.height.Text)
	if err != nil || height <= 0 {
		return wp, fmt.Errorf("invalid wall height %q", v.height.Text)
	}
	wp.Sections = []model.SectionPlan{model.RectPlan(width, height)}

	if v.gable.Checked {
		rise, run, err := model.ParsePitch(v.pitch.Text)
		if err != nil {
			return wp, fmt.Errorf("invalid roof pitch %q", v.pitch.Text)
		}
		wp.Sections = append(wp.Sections, model.GablePlan(width, rise, run))
	}

	for _, spec := range strings.Split(v.openings.Text, ";") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.SplitN(strings.ToLower(spec), "x", 2)
		if len(parts) != 2 {
			return wp, fmt.Errorf("invalid opening %q, expected WxH", spec)
		}
		ow, err := model.ParseDimension(strings.TrimSpace(parts[0]))
		if err != nil {
			return wp, fmt.Errorf("invalid opening width in %q", spec)
		}
		oh, err := model.ParseDimension(strings.TrimSpace(parts[1]))
		if err != nil {
			return wp, fmt.Errorf("invalid opening height in %q", spec)
		}
		wp.Openings = append(wp.Openings, model.NewOpening(ow, oh))
	}
	return wp, nil
}

func (a *App) showAddWallDialog() {
	v := newWallFormValues()
	v.label.SetText(fmt.Sprintf("Wall %d", len(a.takeoff.Walls)+1))
	v.direction.SetSelected("front")
	v.pitch.SetText("6/12")

	form := dialog.NewForm("Add Wall", "Add", "Cancel", v.formItems(),
		func(ok bool) {
			if !ok {
				return
			}
			wp, err := v.buildWallPlan("")
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.pushHistory("Add Wall")
			a.takeoff.Walls = append(a.takeoff.Walls, wp)
			a.refreshWallsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 420))
	form.Show()
}

func (a *App) showEditWallDialog(idx int) {
	wp := a.takeoff.Walls[idx]
	v := newWallFormValues()
	v.label.SetText(wp.Label)
	v.direction.SetSelected(wp.Direction)

	for _, sp := range wp.Sections {
		switch sp.Shape {
		case model.ShapeGable:
			v.gable.SetChecked(true)
			run := sp.PitchRun
			if run == 0 {
				run = 12
			}
			v.pitch.SetText(fmt.Sprintf("%g/%g", sp.PitchRise, run))
		default:
			v.width.SetText(fmt.Sprintf("%g", sp.WidthIn))
			v.height.SetText(fmt.Sprintf("%g", sp.HeightIn))
		}
	}
	specs := make([]string, len(wp.Openings))
	for i, o := range wp.Openings {
		specs[i] = fmt.Sprintf("%gx%g", o.WidthIn, o.HeightIn)
	}
	v.openings.SetText(strings.Join(specs, "; "))

	form := dialog.NewForm("Edit Wall", "Save", "Cancel", v.formItems(),
		func(ok bool) {
			if !ok {
				return
			}
			edited, err := v.buildWallPlan(wp.ID)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.pushHistory("Edit Wall")
			a.takeoff.Walls[idx] = edited
			a.refreshWallsList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 420))
	form.Show()
}

// ─── Product & Settings Panel ──────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	s := &a.takeoff.Settings

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.2f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	productSelect := widget.NewSelect(a.catalog.Names(), func(selected string) {
		if p := a.catalog.FindByName(selected); p != nil {
			a.takeoff.Product = *p
		}
	})
	productSelect.SetSelected(a.takeoff.Product.Name)

	methodSelect := widget.NewSelect([]string{"Panels (sheet goods)", "Courses (lap siding)"}, func(selected string) {
		if strings.HasPrefix(selected, "Courses") {
			s.Method = model.MethodCourses
		} else {
			s.Method = model.MethodPanels
		}
	})
	switch s.Method {
	case model.MethodCourses:
		methodSelect.SetSelected("Courses (lap siding)")
	default:
		methodSelect.SetSelected("Panels (sheet goods)")
	}

	trimCheck := widget.NewCheck("", func(b bool) { s.IncludeTrim = b })
	trimCheck.Checked = s.IncludeTrim

	productSection := widget.NewCard("Product", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Siding Product"), productSelect,
		),
		container.NewHBox(
			widget.NewButtonWithIcon("Add Product", theme.ContentAddIcon(), func() {
				a.showAddProductDialog(productSelect)
			}),
			widget.NewButton("Export Catalog...", func() { a.exportCatalog() }),
			widget.NewButton("Import Catalog...", func() { a.importCatalog(productSelect) }),
		),
	))

	estimateSection := widget.NewCard("Estimating", "", container.NewGridWithColumns(2,
		widget.NewLabel("Method"), methodSelect,
		widget.NewLabel("Waste Fraction"), floatEntry(&s.WasteFraction),
		widget.NewLabel("Round Inches to 1/"), intEntry(&s.RoundDenominator),
		widget.NewLabel("Include Trim"), trimCheck,
		widget.NewLabel("Trim Waste Fraction"), floatEntry(&s.TrimWasteFraction),
	))

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		a.config.Theme = selected
	})
	themeSelect.SetSelected(a.config.Theme)

	prefsSection := widget.NewCard("Preferences", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Theme"), themeSelect,
		),
		widget.NewButton("Save as Defaults", func() {
			a.config.DefaultProductName = a.takeoff.Product.Name
			a.config.DefaultWasteFraction = s.WasteFraction
			a.config.DefaultMethod = s.Method.String()
			a.config.DefaultRoundDenominator = s.RoundDenominator
			a.config.DefaultIncludeTrim = s.IncludeTrim
			if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowInformation("Saved", "Current settings saved as defaults.", a.window)
		}),
	))

	return container.NewVScroll(container.NewVBox(
		productSection,
		estimateSection,
		prefsSection,
	))
}

func (a *App) showAddProductDialog(productSelect *widget.Select) {
	nameEntry := widget.NewEntry()
	materialEntry := widget.NewEntry()
	coverageEntry := widget.NewEntry()
	coverageEntry.SetPlaceHolder("sq ft per panel")
	priceEntry := widget.NewEntry()
	lengthEntry := widget.NewEntry()
	lengthEntry.SetPlaceHolder("lap only, inches")
	exposureEntry := widget.NewEntry()
	exposureEntry.SetPlaceHolder("lap only, inches")

	form := dialog.NewForm("Add Product", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Material", materialEntry),
			widget.NewFormItem("Coverage (sq ft)", coverageEntry),
			widget.NewFormItem("Price per Panel", priceEntry),
			widget.NewFormItem("Piece Length (in)", lengthEntry),
			widget.NewFormItem("Exposure (in)", exposureEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			price, _ := strconv.ParseFloat(priceEntry.Text, 64)
			pieceLen, _ := strconv.ParseFloat(lengthEntry.Text, 64)
			exposure, _ := strconv.ParseFloat(exposureEntry.Text, 64)

			var p model.PanelProduct
			if pieceLen > 0 && exposure > 0 {
				p = model.NewLapProduct(nameEntry.Text, materialEntry.Text, pieceLen, exposure, price)
			} else {
				coverage, _ := strconv.ParseFloat(coverageEntry.Text, 64)
				if coverage <= 0 {
					dialog.ShowError(fmt.Errorf("coverage must be > 0 sq ft"), a.window)
					return
				}
				p = model.NewPanelProduct(nameEntry.Text, materialEntry.Text, coverage, price)
			}

			a.catalog.Products = append(a.catalog.Products, p)
			if err := project.SaveCatalog(a.catalogPath, a.catalog); err != nil {
				dialog.ShowError(err, a.window)
			}
			productSelect.Options = a.catalog.Names()
			productSelect.SetSelected(p.Name)
			productSelect.Refresh()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 400))
	form.Show()
}

func (a *App) exportCatalog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.SaveCatalog(writer.URI().Path(), a.catalog); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("catalog.json")
	d.Show()
}

func (a *App) importCatalog(productSelect *widget.Select) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		merged, err := project.ImportCatalog(reader.URI().Path(), a.catalog)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.catalog = merged
		if err := project.SaveCatalog(a.catalogPath, a.catalog); err != nil {
			dialog.ShowError(err, a.window)
		}
		productSelect.Options = a.catalog.Names()
		productSelect.Refresh()
	}, a.window)
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(
		widget.NewLabel("No results yet. Add walls and a product, then click Estimate."),
	)
	estimateBtn := widget.NewButtonWithIcon("Estimate", theme.MediaPlayIcon(), func() {
		a.runEstimate()
	})
	return container.NewBorder(
		container.NewHBox(layout.NewSpacer(), estimateBtn),
		nil, nil, nil,
		a.resultContainer,
	)
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderEstimateResults(a.takeoff, a.estimate))
	a.resultContainer.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runEstimate() {
	if len(a.takeoff.Walls) == 0 {
		dialog.ShowInformation("Nothing to estimate", "Add at least one wall first.", a.window)
		return
	}

	est, err := estimate.New(a.takeoff.Settings).EstimateTakeoff(a.takeoff)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.estimate = est
	a.refreshResults()
}

// exportWithEstimate runs the estimate if needed, then prompts for a save
// location and invokes the export function.
func (a *App) exportWithEstimate(defaultName string, exportFn func(path string) error) {
	if len(a.takeoff.Walls) == 0 {
		dialog.ShowInformation("Nothing to export", "Add at least one wall first.", a.window)
		return
	}
	if a.estimate == nil {
		a.runEstimate()
		if a.estimate == nil {
			return
		}
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := exportFn(path); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

func (a *App) exportBackup() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportAllData(writer.URI().Path(), a.config, a.catalog); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("sidingcalc-backup.json")
	d.Show()
}

func (a *App) importBackup() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		backup, err := project.ImportAllData(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config = backup.Config
		a.catalog = backup.Catalog
		if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := project.SaveCatalog(a.catalogPath, a.catalog); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Import Complete", "Settings and catalog restored.", a.window)
	}, a.window)
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importWalls(importFn func(path string) wallimporter.ImportResult) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importFn(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result wallimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	if len(result.Walls) > 0 {
		a.pushHistory("Import Walls")
		a.takeoff.Walls = append(a.takeoff.Walls, result.Walls...)
		a.refreshWallsList()

		msg := fmt.Sprintf("Successfully imported %d walls.", len(result.Walls))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
