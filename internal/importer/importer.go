// Package importer reads wall schedules from CSV and Excel files and wall
// elevations from DXF drawings. Schedules support automatic delimiter
// detection, flexible column mapping, case-insensitive header recognition,
// and carpenter-style dimension strings in every measurement cell.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sidingworks/sidingcalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation. Rows that cannot be
// parsed become Errors; the remaining rows still import.
type ImportResult struct {
	Walls    []model.WallPlan
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label     int
	Direction int
	Width     int
	Height    int
	Pitch     int
	Shape     int
	Openings  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":     {"label", "name", "wall", "wall name", "description", "desc"},
	"direction": {"direction", "dir", "side", "facing", "elevation", "orientation"},
	"width":     {"width", "w", "length", "len", "base"},
	"height":    {"height", "h", "wall height"},
	"pitch":     {"pitch", "roof pitch", "slope", "rise"},
	"shape":     {"shape", "type", "section", "section type"},
	"openings":  {"openings", "opening", "windows", "doors", "cutouts"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column
// role. Returns the mapping and true if a header was detected, or the default
// positional mapping (label, direction, width, height, pitch, shape,
// openings) and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Label:     -1,
		Direction: -1,
		Width:     -1,
		Height:    -1,
		Pitch:     -1,
		Shape:     -1,
		Openings:  -1,
	}

	assign := func(role string, i int) {
		switch role {
		case "label":
			if mapping.Label == -1 {
				mapping.Label = i
			}
		case "direction":
			if mapping.Direction == -1 {
				mapping.Direction = i
			}
		case "width":
			if mapping.Width == -1 {
				mapping.Width = i
			}
		case "height":
			if mapping.Height == -1 {
				mapping.Height = i
			}
		case "pitch":
			if mapping.Pitch == -1 {
				mapping.Pitch = i
			}
		case "shape":
			if mapping.Shape == -1 {
				mapping.Shape = i
			}
		case "openings":
			if mapping.Openings == -1 {
				mapping.Openings = i
			}
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					assign(role, i)
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{
			Label:     0,
			Direction: 1,
			Width:     2,
			Height:    3,
			Pitch:     4,
			Shape:     5,
			Openings:  6,
		}, false
	}

	return mapping, true
}

// parseShape recognizes a section shape cell. Empty cells default to a
// rectangle. Returns the shape and whether the string was recognized.
func parseShape(s string) (model.SectionShape, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rect", "rectangle", "r", "wall":
		return model.ShapeRect, true
	case "gable", "triangle", "tri", "g", "peak":
		return model.ShapeGable, true
	default:
		return model.ShapeRect, false
	}
}

// parseOpenings reads an openings cell like "35x59; 3' x 6-8\"". Entries are
// separated by semicolons, width and height by an x; both sides accept the
// full dimension grammar.
func parseOpenings(cell string) ([]model.Opening, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}

	var openings []model.Opening
	for _, entry := range strings.Split(cell, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(strings.ToLower(entry), "x", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("opening %q is not in WIDTHxHEIGHT form", entry)
		}
		w, err := model.ParseDimension(parts[0])
		if err != nil {
			return nil, fmt.Errorf("opening %q: %v", entry, err)
		}
		h, err := model.ParseDimension(parts[1])
		if err != nil {
			return nil, fmt.Errorf("opening %q: %v", entry, err)
		}
		openings = append(openings, model.NewOpening(w, h))
	}
	return openings, nil
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// wallRow is one parsed schedule row before merging by label.
type wallRow struct {
	label     string
	direction string
	section   model.SectionPlan
	openings  []model.Opening
}

// parseRow extracts a wallRow using the given column mapping.
// Returns the row, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, wallCount int) (wallRow, string, string) {
	var warning string

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Wall %d", wallCount+1)
	}

	shape, ok := parseShape(getCell(row, mapping.Shape))
	if !ok {
		warning = fmt.Sprintf("%s: Unknown shape %q, assuming rectangle", rowLabel, getCell(row, mapping.Shape))
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return wallRow{}, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, err := model.ParseDimension(widthStr)
	if err != nil {
		return wallRow{}, fmt.Sprintf("%s: Invalid width %q", rowLabel, widthStr), ""
	}
	if width <= 0 {
		return wallRow{}, fmt.Sprintf("%s: Width must be positive", rowLabel), ""
	}

	wr := wallRow{
		label:     label,
		direction: getCell(row, mapping.Direction),
	}

	if shape == model.ShapeGable {
		pitchStr := getCell(row, mapping.Pitch)
		if pitchStr == "" {
			return wallRow{}, fmt.Sprintf("%s: Gable rows need a pitch", rowLabel), ""
		}
		rise, run, err := model.ParsePitch(pitchStr)
		if err != nil {
			return wallRow{}, fmt.Sprintf("%s: Invalid pitch %q", rowLabel, pitchStr), ""
		}
		wr.section = model.GablePlan(width, rise, run)
	} else {
		heightStr := getCell(row, mapping.Height)
		if heightStr == "" {
			return wallRow{}, fmt.Sprintf("%s: Missing height value", rowLabel), ""
		}
		height, err := model.ParseDimension(heightStr)
		if err != nil {
			return wallRow{}, fmt.Sprintf("%s: Invalid height %q", rowLabel, heightStr), ""
		}
		if height <= 0 {
			return wallRow{}, fmt.Sprintf("%s: Height must be positive", rowLabel), ""
		}
		wr.section = model.RectPlan(width, height)
	}

	openings, err := parseOpenings(getCell(row, mapping.Openings))
	if err != nil {
		return wallRow{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}
	wr.openings = openings

	return wr, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports a wall schedule from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports a wall schedule from a CSV reader with a
// specific delimiter. Useful for testing or when the delimiter is known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports a wall schedule from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data. It
// detects headers, maps columns, parses each row, and merges rows sharing a
// label into one wall plan (a rect plate row plus a gable row is the common
// two-row wall).
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// No recognized header: if the width cell of the first row does not
		// parse as a dimension, treat the row as an unknown header and keep
		// the positional mapping.
		if _, err := model.ParseDimension(rows[0][2]); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	byLabel := make(map[string]int) // label -> index into result.Walls
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		wr, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Walls))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		if idx, ok := byLabel[wr.label]; ok {
			wp := &result.Walls[idx]
			wp.Sections = append(wp.Sections, wr.section)
			wp.Openings = append(wp.Openings, wr.openings...)
			if wr.direction != "" && model.NormalizeDirection(wr.direction) != model.NormalizeDirection(wp.Direction) {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"%s: Wall %q already faces %q; ignoring direction %q", rowLabel, wr.label, wp.Direction, wr.direction))
			}
			continue
		}

		wp := model.NewWallPlan(wr.label, wr.direction)
		wp.Sections = []model.SectionPlan{wr.section}
		wp.Openings = wr.openings
		byLabel[wr.label] = len(result.Walls)
		result.Walls = append(result.Walls, wp)
	}

	return result
}
