// internal/render/emit.go
package render

import (
	"fmt"

	"ssdraw/internal/layout"
	"ssdraw/internal/symbol"
)

// Emit walks the wrapped annotations block by block and streams drawing
// commands into per-page sinks. Block b of every annotation is that
// annotation's line b; pages hold capacity consecutive blocks each
// (all of them when height is unconstrained). newPage is called once per
// page, in order, with the page index.
func Emit(cfg Config, annos []layout.Annotation, newPage func(page int) Sink) error {
	if len(annos) == 0 {
		return nil
	}
	geom := NewGeometry(cfg, len(annos))
	capacity, err := geom.BlocksPerPage()
	if err != nil {
		return err
	}
	blocks := len(annos[0].Lines)
	for _, a := range annos[1:] {
		if len(a.Lines) != blocks {
			return fmt.Errorf("annotation %q wraps to %d lines, want %d", a.Name, len(a.Lines), blocks)
		}
	}

	var (
		sink Sink
		page = -1
	)
	for b := 0; b < blocks; b++ {
		pg, rel := 0, b
		if capacity > 0 {
			pg, rel = b/capacity, b%capacity
		}
		if pg != page {
			sink = newPage(pg)
			page = pg
		}
		for t, a := range annos {
			emitLine(sink, a.Name, a.Lines[b], rel, t)
		}
	}
	return nil
}

// emitLine writes one annotation line in draw order: label, start
// residue marker, the segments left to right, end residue marker.
func emitLine(s Sink, name string, ln layout.Line, block, track int) {
	s.Label(name, block, track)

	// A line opening with a residue labels that residue (count before
	// the line, plus one); a line opening with a gap keeps the raw
	// count. The asymmetry matches long-standing plot output.
	start := ln.StartResidue
	if len(ln.Text) > 0 && !symbol.IsGap(ln.Text[0]) {
		start++
	}
	s.ResidueMarker(start, block, track, 0, true)

	for _, seg := range layout.Segments(ln.Text) {
		s.Segment(symbol.CategoryOf(seg.Sym), block, track, seg.Start, seg.End)
	}

	s.ResidueMarker(ln.EndResidue, block, track, len(ln.Text), false)
}
