// Package style converts single mxGraph style declaration from light to dark
// palette.
package style

import (
	"regexp"
	"strings"

	"mxdark/palette"
)

type substitution struct {
	re   *regexp.Regexp
	repl string
}

var substitutions = buildSubstitutions()

func buildSubstitutions() []substitution {
	tables := []struct {
		key   string
		table []palette.Entry
	}{
		{"fillColor=", palette.Fill},
		{"strokeColor=", palette.Stroke},
		{"fontColor=", palette.Font},
	}

	var subs []substitution
	for _, t := range tables {
		for _, e := range t.table {
			subs = append(subs, substitution{
				re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(t.key+e.Light)),
				repl: t.key + e.Dark,
			})
		}
	}
	return subs
}

const (
	mutedFont   = "fontColor=" + palette.MutedText + ";"
	brightFont  = "fontColor=" + palette.BrightText + ";"
	defaultLook = "fillColor=" + palette.DefaultFill + ";strokeColor=" + palette.DefaultStroke + ";fontColor=" + palette.BrightText + ";"
)

// Rewrite maps colors of style to the dark palette and makes sure element text
// remains legible on dark canvas. isEdge tells whether style belongs to a
// connector.
func Rewrite(style string, isEdge bool) string {
	for _, s := range substitutions {
		style = s.re.ReplaceAllLiteralString(style, s.repl)
	}

	hasFill := strings.Contains(style, "fillColor=")
	transparent := strings.Contains(style, "fillColor=none") && strings.Contains(style, "strokeColor=none")
	hasFont := strings.Contains(style, "fontColor=")

	switch {
	case isEdge:
		// connector labels
		if !hasFont {
			style = appendProps(style, mutedFont)
		}
	case transparent:
		// borderless text: titles and notes
		if !hasFont {
			style = appendProps(style, mutedFont)
		}
	case hasFill:
		if !hasFont {
			style = appendProps(style, brightFont)
		}
	default:
		// unstyled element would be invisible on dark canvas
		style = appendProps(style, defaultLook)
	}
	return style
}

func appendProps(style, props string) string {
	return strings.TrimRight(style, ";") + ";" + props
}
