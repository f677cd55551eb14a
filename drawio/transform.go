// Package drawio converts draw.io (mxGraph) documents to dark palette. Document
// is treated as text: only style attribute values and root tag are touched,
// everything else is preserved byte for byte.
package drawio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"mxdark/palette"
	"mxdark/style"
)

const (
	rootTag    = "<mxGraphModel"
	edgeMarker = `edge="1"`
)

var (
	styleAttr      = regexp.MustCompile(`\bstyle="([^"]*)"`)
	backgroundAttr = regexp.MustCompile(`\sbackground=(?:"([^"]*)"|'([^']*)')`)
)

// XML declaration naming 16 bit encoding, only at the very start of document.
var utf16Decl = regexp.MustCompile(`^(<\?xml[^>]*?\sencoding=["'])(?i:utf-16[a-z]*)(["'])`)

// Stats describes what was changed in a single document.
type Stats struct {
	Roots   int // graph model roots given dark background
	Styles  int // style attributes seen
	Edges   int // of them belonging to connectors
	Changed int // style attributes with new value
}

// Transform returns document with dark canvas and all style declarations
// rewritten to dark palette.
func Transform(doc string) (string, Stats) {
	var st Stats

	doc, st.Roots = setBackground(doc)

	matches := styleAttr.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return doc, st
	}

	var b strings.Builder
	b.Grow(len(doc) + len(matches)*32)

	last := 0
	for _, m := range matches {
		// m[2], m[3] - quoted value bounds
		edge := isEdge(doc, m[0], m[1])
		old := doc[m[2]:m[3]]
		val := style.Rewrite(old, edge)

		st.Styles++
		if edge {
			st.Edges++
		}
		if val != old {
			st.Changed++
		}

		b.WriteString(doc[last:m[2]])
		b.WriteString(val)
		last = m[3]
	}
	b.WriteString(doc[last:])
	return b.String(), st
}

// setBackground puts dark background on every graph model root tag,
// overwriting background value if one is already present.
func setBackground(doc string) (string, int) {
	var (
		b     strings.Builder
		count int
		pos   int
	)
	for {
		i := strings.Index(doc[pos:], rootTag)
		if i < 0 {
			break
		}
		i += pos
		name := i + len(rootTag)
		if name < len(doc) && !isNameEnd(doc[name]) {
			// some other element, like <mxGraphModelX>
			b.WriteString(doc[pos:name])
			pos = name
			continue
		}
		end := tagEnd(doc, name)
		attrs := doc[name:end]

		b.WriteString(doc[pos:name])
		if loc := backgroundAttr.FindStringSubmatchIndex(attrs); loc != nil {
			// either double or single quoted value matched
			from, to := loc[2], loc[3]
			if from < 0 {
				from, to = loc[4], loc[5]
			}
			b.WriteString(attrs[:from])
			b.WriteString(palette.Background)
			b.WriteString(attrs[to:])
		} else {
			b.WriteString(` background="` + palette.Background + `"`)
			b.WriteString(attrs)
		}
		count++
		pos = end
	}
	if count == 0 {
		return doc, 0
	}
	b.WriteString(doc[pos:])
	return b.String(), count
}

// isEdge reports whether attribute at doc[start:end] lives in the opening tag
// of a connector. Raw '<' is not allowed inside XML attribute values, so the
// nearest one before attribute starts its tag.
func isEdge(doc string, start, end int) bool {
	open := strings.LastIndexByte(doc[:start], '<')
	if open < 0 {
		return false
	}
	return strings.Contains(doc[open:tagEnd(doc, end)], edgeMarker)
}

// tagEnd returns index of '>' closing tag which contains position from,
// quoted attribute values are skipped. Returns len(doc) for unterminated tag.
func tagEnd(doc string, from int) int {
	var quote byte
	for i := from; i < len(doc); i++ {
		c := doc[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return len(doc)
}

func isNameEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '>', '/':
		return true
	}
	return false
}

// TransformFile reads diagram from input, converts it and writes result to
// output. Byte order mark of the input, if any, is honored - result is always
// UTF-8 without BOM, and XML declaration of UTF-16 input says so.
func TransformFile(ctx context.Context, input, output string, log *zap.Logger) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	doc, err := readDocument(input)
	if err != nil {
		return Stats{}, err
	}

	res, st := Transform(doc)

	if err := Check(res); err != nil {
		// not fatal, whatever we have is still written out
		log.Warn("Converted diagram does not look right", zap.String("file", input), zap.Error(err))
	}

	if err := os.WriteFile(output, []byte(res), 0644); err != nil {
		return Stats{}, fmt.Errorf("unable to write diagram: %w", err)
	}

	log.Info("Diagram converted", zap.String("from", filepath.Base(input)), zap.String("to", filepath.Base(output)),
		zap.Int("styles", st.Styles), zap.Int("edges", st.Edges), zap.Int("changed", st.Changed))
	return st, nil
}

func readDocument(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("unable to open diagram: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(transform.Nop)))
	if err != nil {
		return "", fmt.Errorf("unable to read diagram %q: %w", path, err)
	}
	return utf16Decl.ReplaceAllString(string(data), "${1}UTF-8${2}"), nil
}
