package drawio

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"mxdark/palette"
)

// Check parses converted document and verifies that each graph model root is
// set to dark canvas. Compressed diagrams have no visible roots and are
// reported too.
func Check(doc string) error {
	d := etree.NewDocument()
	if err := d.ReadFromString(doc); err != nil {
		return fmt.Errorf("unable to parse document: %w", err)
	}

	roots := d.FindElements("//mxGraphModel")
	if len(roots) == 0 {
		return errors.New("no mxGraphModel element found, diagram may be compressed")
	}
	for i, root := range roots {
		if bg := root.SelectAttrValue("background", ""); bg != palette.Background {
			return fmt.Errorf("mxGraphModel #%d has background %q", i+1, bg)
		}
	}
	return nil
}
