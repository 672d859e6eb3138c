// internal/symbol/symbol_test.go
package symbol

import "testing"

func TestNormalizeDashAndSpaceBecomeCoil(t *testing.T) {
	got := Normalize("H- EC")
	if got != "HCCEC" {
		t.Fatalf("Normalize = %q, want HCCEC", got)
	}
}

func TestCategoryTable(t *testing.T) {
	cases := []struct {
		sym  byte
		want Category
		name string
	}{
		{AlphaHelix, CatAlphaHelix, "alphaHelix"},
		{ThreeTenHelix, CatThreeTenHelix, "threeTenHelix"},
		{PiHelix, CatPiHelix, "piHelix"},
		{Sheet, CatSheet, "sheet"},
		{SheetEnd, CatSheetEnd, "sheetAtLineEnd"},
		{Bridge, CatBridge, "bridge"},
		{Turn, CatTurn, "turn"},
		{Bend, CatBend, "bend"},
		{Coil, CatCoil, "coil"},
		{Gap, CatGap, "gap"},
	}
	for _, c := range cases {
		if got := CategoryOf(c.sym); got != c.want {
			t.Errorf("CategoryOf(%q) = %v, want %v", c.sym, got, c.want)
		}
		if c.want.String() != c.name {
			t.Errorf("String(%v) = %q, want %q", c.want, c.want.String(), c.name)
		}
	}
}

func TestUnknownSymbolFallsBackToCoil(t *testing.T) {
	if CategoryOf('X') != CatCoil {
		t.Fatalf("unknown symbol should draw as coil")
	}
}

func TestIsGap(t *testing.T) {
	for _, c := range []byte("-.") {
		if !IsGap(c) {
			t.Errorf("IsGap(%q) = false", c)
		}
	}
	if IsGap('A') || IsGap('C') {
		t.Errorf("residues must not be gaps")
	}
}
