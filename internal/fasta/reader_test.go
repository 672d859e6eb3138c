// internal/fasta/reader_test.go
package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ssdraw/internal/symbol"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fasta")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadTwoRecords(t *testing.T) {
	path := writeFile(t, ">one\nHHHCCC\n>two\nEEE\nTTT\n")
	recs, err := Read(path, symbol.Structures)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].Name != "one" || recs[0].Seq != "HHHCCC" {
		t.Errorf("record 0 = %+v", recs[0])
	}
	if recs[1].Name != "two" || recs[1].Seq != "EEETTT" {
		t.Errorf("record 1 = %+v", recs[1])
	}
}

func TestReadFiltersAndUppercases(t *testing.T) {
	path := writeFile(t, ">p1\nacd*12\teFg\n")
	recs, err := Read(path, symbol.Residues)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "ACDEFG" {
		t.Fatalf("decoration survived filtering: %+v", recs)
	}
}

func TestReadStructureSpaceIsKept(t *testing.T) {
	// DSSP uses a blank for "no structure"; it is part of the structure
	// alphabet and later normalizes to coil.
	path := writeFile(t, ">s\nHH CC\n")
	recs, err := Read(path, symbol.Structures)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if recs[0].Seq != "HH CC" {
		t.Fatalf("seq = %q", recs[0].Seq)
	}
}

func TestReadKeepsGapCharacters(t *testing.T) {
	path := writeFile(t, ">s\nAC-DE.FG\n")
	recs, err := Read(path, symbol.Residues)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if recs[0].Seq != "AC-DE.FG" {
		t.Fatalf("gaps dropped: %q", recs[0].Seq)
	}
}

func TestReadNoMarkerYieldsEmpty(t *testing.T) {
	path := writeFile(t, "HHHCCC\nEEE\n")
	recs, err := Read(path, symbol.Structures)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records without a marker, got %d", len(recs))
	}
}

func TestReadNameIsRestOfLine(t *testing.T) {
	path := writeFile(t, ">sp|P12345| protein one\nCCC\n")
	recs, err := Read(path, symbol.Structures)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if recs[0].Name != "sp|P12345| protein one" {
		t.Fatalf("name = %q", recs[0].Name)
	}
}

func TestReadMissingFileNamesIt(t *testing.T) {
	_, err := Read("no/such/file.fasta", symbol.Structures)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "no/such/file.fasta") {
		t.Errorf("error does not name the file: %v", err)
	}
}
