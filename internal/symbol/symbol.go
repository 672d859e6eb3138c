// internal/symbol/symbol.go
package symbol

import "strings"

// Alphabets accepted by the FASTA reader. Parsing is case-insensitive;
// characters outside the alphabet are dropped.
const (
	// GapChars are the two characters recognized as alignment gaps.
	GapChars = "-."

	// Residues are the standard amino-acid letters plus the gap characters.
	Residues = "ACDEFGHIKLMNPQRSTVWY" + GapChars

	// Structures are the DSSP class letters plus dash and space, which
	// both normalize to coil.
	Structures = "HGIEBTSC- "
)

// Structure symbols after normalization. SheetEnd never appears in input;
// the layout stage rewrites a trailing Sheet to it when the strand
// continues on the next wrapped line.
const (
	AlphaHelix    byte = 'H'
	ThreeTenHelix byte = 'G'
	PiHelix       byte = 'I'
	Sheet         byte = 'E'
	Bridge        byte = 'B'
	Turn          byte = 'T'
	Bend          byte = 'S'
	Coil          byte = 'C'
	Gap           byte = '-'
	SheetEnd      byte = 'e'
)

// Category identifies the drawing primitive for one structure symbol.
type Category int

const (
	CatGap Category = iota
	CatCoil
	CatBridge
	CatTurn
	CatBend
	CatThreeTenHelix
	CatAlphaHelix
	CatPiHelix
	CatSheet
	CatSheetEnd
)

// categories maps each normalized symbol to its drawing category.
// Adding a structure class means adding one entry here.
var categories = map[byte]Category{
	AlphaHelix:    CatAlphaHelix,
	ThreeTenHelix: CatThreeTenHelix,
	PiHelix:       CatPiHelix,
	Sheet:         CatSheet,
	Bridge:        CatBridge,
	Turn:          CatTurn,
	Bend:          CatBend,
	Coil:          CatCoil,
	Gap:           CatGap,
	SheetEnd:      CatSheetEnd,
}

var names = map[Category]string{
	CatGap:           "gap",
	CatCoil:          "coil",
	CatBridge:        "bridge",
	CatTurn:          "turn",
	CatBend:          "bend",
	CatThreeTenHelix: "threeTenHelix",
	CatAlphaHelix:    "alphaHelix",
	CatPiHelix:       "piHelix",
	CatSheet:         "sheet",
	CatSheetEnd:      "sheetAtLineEnd",
}

// CategoryOf returns the drawing category for a structure symbol.
// Unknown symbols render as coil rather than failing mid-draw.
func CategoryOf(c byte) Category {
	if cat, ok := categories[c]; ok {
		return cat
	}
	return CatCoil
}

func (c Category) String() string { return names[c] }

// IsGap reports whether c is one of the alignment gap characters.
func IsGap(c byte) bool { return strings.IndexByte(GapChars, c) >= 0 }

// Normalize canonicalizes one parsed structure string: dash and space
// become coil. Gap characters only re-enter a structure later, when the
// aligner re-inserts them from a reference sequence.
func Normalize(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == '-' || c == ' ' {
			b[i] = Coil
		}
	}
	return string(b)
}
