// internal/render/text_test.go
package render

import (
	"strings"
	"testing"

	"ssdraw/internal/symbol"
)

func TestTextSinkFormatsCommands(t *testing.T) {
	g := NewGeometry(Config{Width: 12, Indent: 2, ResiduesPerLine: 10, LineDist: 0.5, BlockDist: 1}, 1)
	s := NewTextSink(g)
	s.Label("prot", 0, 0)
	s.ResidueMarker(1, 0, 0, 0, true)
	s.Segment(symbol.CatAlphaHelix, 0, 0, 0, 5)
	s.ResidueMarker(5, 0, 0, 5, false)

	lines := strings.Split(strings.TrimRight(string(s.Bytes()), "\n"), "\n")
	want := []string{
		`label "prot" x=0.000 y=0.500`,
		`residue 1 start x=2.000 y=0.500`,
		`segment alphaHelix x1=2.000 x2=7.000 y=0.500`,
		`residue 5 end x=7.000 y=0.500`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d commands, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("command %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
