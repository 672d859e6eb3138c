// internal/render/sink.go
package render

import (
	"errors"

	"ssdraw/internal/symbol"
)

// Sink receives the abstract drawing commands for one output page. It
// needs no knowledge of alignments; positions arrive as block/line/offset
// indices and the sink decides how to realize them.
type Sink interface {
	// Segment draws one structure run spanning [start, end) character
	// offsets on the given block row and track line.
	Segment(cat symbol.Category, block, line, start, end int)

	// Label draws the track name at the left edge of a line.
	Label(text string, block, line int)

	// ResidueMarker draws a residue number at character offset off;
	// isStart distinguishes the left-edge marker from the right-edge one.
	ResidueMarker(number, block, line, off int, isStart bool)
}

// Config are the immutable layout tunables, threaded explicitly through
// the emitter instead of living in package state.
type Config struct {
	Width           float64 // total image width, cm
	MaxHeight       float64 // maximum image height, cm; 0 = unconstrained
	Indent          float64 // left indent before the first residue, cm
	ResiduesPerLine int
	LineDist        float64 // vertical pitch between track lines, cm
	BlockDist       float64 // extra vertical gap between blocks, cm
}

// Geometry converts block/line/offset indices to page coordinates.
type Geometry struct {
	cfg        Config
	tracks     int
	perResidue float64
	blockPitch float64
}

// NewGeometry derives the per-residue width and block pitch for a
// diagram with the given number of annotation tracks.
func NewGeometry(cfg Config, tracks int) Geometry {
	return Geometry{
		cfg:        cfg,
		tracks:     tracks,
		perResidue: (cfg.Width - cfg.Indent) / float64(cfg.ResiduesPerLine),
		blockPitch: float64(tracks)*cfg.LineDist + cfg.BlockDist,
	}
}

// X returns the horizontal position of a character offset within a line.
func (g Geometry) X(off int) float64 { return g.cfg.Indent + float64(off)*g.perResidue }

// Y returns the vertical position of track line within block.
func (g Geometry) Y(block, line int) float64 {
	return float64(block)*g.blockPitch + float64(line+1)*g.cfg.LineDist
}

// BlocksPerPage returns how many blocks fit one page under MaxHeight,
// or 0 for unconstrained height. A height too small for a single block
// is a configuration error, not a crash.
func (g Geometry) BlocksPerPage() (int, error) {
	if g.cfg.MaxHeight <= 0 {
		return 0, nil
	}
	n := int(g.cfg.MaxHeight / g.blockPitch)
	if n < 1 {
		return 0, errors.New("image height too small for a single block; raise --height or shrink the pitches")
	}
	return n, nil
}

// Validate rejects tunables the geometry cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return errors.New("--width must be > 0")
	case c.MaxHeight < 0:
		return errors.New("--height must be ≥ 0")
	case c.Indent < 0 || c.Indent >= c.Width:
		return errors.New("--indent must be within [0, width)")
	case c.ResiduesPerLine < 1:
		return errors.New("--residues must be ≥ 1")
	case c.LineDist <= 0:
		return errors.New("--line-dist must be > 0")
	case c.BlockDist < 0:
		return errors.New("--block-dist must be ≥ 0")
	}
	return nil
}
