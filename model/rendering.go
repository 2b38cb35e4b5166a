package model

import (
	"fmt"
	"io"
)

const censusLinePrefix = "Colony"

// TextRenderer writes boards as plain text
type TextRenderer struct {
	out        io.Writer
	showCensus bool
}

// NewTextRenderer creates a renderer writing to out, optionally followed by a colony census
func NewTextRenderer(out io.Writer, showCensus bool) *TextRenderer {
	return &TextRenderer{out: out, showCensus: showCensus}
}

// Display writes the board text of g, then one census line per colony when enabled
func (r *TextRenderer) Display(g *Grid) error {
	if _, err := fmt.Fprintf(r.out, "%s\n", g.Bytes()); err != nil {
		return err
	}
	if !r.showCensus {
		return nil
	}
	for _, c := range g.Census() {
		if _, err := fmt.Fprintf(r.out, "%s %q: %d\n", censusLinePrefix, c.Colony, c.Population); err != nil {
			return err
		}
	}
	return nil
}

// DisplayRaw writes board text that could not be parsed exactly as given
func (r *TextRenderer) DisplayRaw(board []byte) error {
	_, err := fmt.Fprintf(r.out, "%s\n", board)
	return err
}
