// sidingcalc-cli — command-line companion to the SidingCalc desktop app.
//
// Build:
//   go build -o sidingcalc-cli ./cmd/sidingcalc-cli
package main

func main() {
	Execute()
}
