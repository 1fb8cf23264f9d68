package model

import "strings"

// directionAliases expands compass abbreviations and passes known labels
// through. Anything not listed is an acceptable label too.
var directionAliases = map[string]string{
	"n":     "north",
	"north": "north",
	"s":     "south",
	"south": "south",
	"e":     "east",
	"east":  "east",
	"w":     "west",
	"west":  "west",
	"front": "front",
	"back":  "back",
	"left":  "left",
	"right": "right",
}

// NormalizeDirection trims and lower-cases a direction label and expands
// compass abbreviations. Unrecognized labels pass through normalized rather
// than being rejected: directions are an open vocabulary, not a closed enum.
func NormalizeDirection(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := directionAliases[key]; ok {
		return canonical
	}
	return key
}
