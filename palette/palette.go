// Package palette holds light to dark color correspondence used when
// converting diagrams.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Entry maps single light mode color to its dark mode counterpart. Both are
// "#rrggbb" literals, lower case.
type Entry struct {
	Light string
	Dark  string
}

// Fills use medium-dark saturated colors so semantic meaning (red, green,
// amber, blue) stays readable on a dark canvas without going near-black.
var Fill = []Entry{
	{Light: "#dae8fc", Dark: "#1e4d8c"}, // blue (entry nodes)
	{Light: "#fff2cc", Dark: "#7a6200"}, // amber (diamonds, caveats)
	{Light: "#d5e8d4", Dark: "#2d6b2d"}, // green (checkpoints)
	{Light: "#f8cecc", Dark: "#8b2020"}, // red (error and stop nodes)
	{Light: "#f5f5f5", Dark: "#3a3a3a"}, // gray (swimlanes, reference nodes)
}

var Stroke = []Entry{
	{Light: "#6c8ebf", Dark: "#6a9fd8"},
	{Light: "#d6b656", Dark: "#d4a820"},
	{Light: "#82b366", Dark: "#5aad5a"},
	{Light: "#b85450", Dark: "#d45a5a"},
	{Light: "#666666", Dark: "#999999"}, // swimlane
}

var Font = []Entry{
	{Light: "#333333", Dark: "#cccccc"}, // swimlane header
	{Light: "#666666", Dark: "#999999"}, // scope notes
	{Light: "#444444", Dark: "#bbbbbb"}, // reference nodes
}

// Fallback colors.
const (
	Background    = "#1e1e1e"
	MutedText     = "#cccccc"
	BrightText    = "#ffffff"
	DefaultFill   = "#2d2d2d"
	DefaultStroke = "#888888"
)

func init() {
	for _, table := range [][]Entry{Fill, Stroke, Font} {
		seen := make(map[string]struct{}, len(table))
		for _, e := range table {
			mustParse(e.Light)
			mustParse(e.Dark)
			if _, exists := seen[e.Light]; exists {
				panic(fmt.Sprintf("duplicate palette entry %s", e.Light))
			}
			seen[e.Light] = struct{}{}
		}
	}
	for _, c := range []string{Background, MutedText, BrightText, DefaultFill, DefaultStroke} {
		mustParse(c)
	}
}

func mustParse(hex string) colorful.Color {
	if len(hex) != 7 {
		panic(fmt.Sprintf("palette color %q is not #rrggbb", hex))
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("palette color %q: %v", hex, err))
	}
	return c
}

// Lightness returns CIE L*a*b* lightness of color in [0, 1].
func Lightness(hex string) (float64, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, err
	}
	l, _, _ := c.Lab()
	return l, nil
}
