// SidingCalc — Siding Area Estimator
//
// A cross-platform desktop application for measuring wall elevations
// and estimating siding material orders.
//
// Build:
//   go build -o sidingcalc ./cmd/sidingcalc
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o sidingcalc.exe ./cmd/sidingcalc
//   GOOS=darwin  GOARCH=amd64 go build -o sidingcalc-darwin ./cmd/sidingcalc
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/sidingworks/sidingcalc/internal/ui"
)

func main() {
	application := app.NewWithID("com.sidingworks.sidingcalc")
	application.Settings().SetTheme(ui.NewSidingCalcTheme())

	window := application.NewWindow("SidingCalc — Siding Area Estimator")

	appUI := ui.NewApp(window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 750))
	window.CenterOnScreen()
	window.ShowAndRun()
}
