// internal/render/text.go
package render

import (
	"bytes"
	"fmt"

	"ssdraw/internal/symbol"
)

// TextSink realizes the drawing commands as one textual instruction per
// line, with coordinates in centimetres. The exact syntax is the
// contract of the downstream renderer, not of the layout pipeline.
type TextSink struct {
	geom Geometry
	buf  bytes.Buffer
}

// NewTextSink returns a sink that positions commands with geom.
func NewTextSink(geom Geometry) *TextSink { return &TextSink{geom: geom} }

func (t *TextSink) Segment(cat symbol.Category, block, line, start, end int) {
	fmt.Fprintf(&t.buf, "segment %s x1=%.3f x2=%.3f y=%.3f\n",
		cat, t.geom.X(start), t.geom.X(end), t.geom.Y(block, line))
}

func (t *TextSink) Label(text string, block, line int) {
	fmt.Fprintf(&t.buf, "label %q x=%.3f y=%.3f\n", text, 0.0, t.geom.Y(block, line))
}

func (t *TextSink) ResidueMarker(number, block, line, off int, isStart bool) {
	side := "end"
	if isStart {
		side = "start"
	}
	fmt.Fprintf(&t.buf, "residue %d %s x=%.3f y=%.3f\n",
		number, side, t.geom.X(off), t.geom.Y(block, line))
}

// Bytes returns the accumulated command text.
func (t *TextSink) Bytes() []byte { return t.buf.Bytes() }
