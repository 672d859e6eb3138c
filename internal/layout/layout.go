// internal/layout/layout.go
package layout

import "ssdraw/internal/symbol"

// Line is one wrapped slice of an annotation. StartResidue is the count
// of non-gap characters before the line, EndResidue the count after it;
// both are cumulative over the whole annotation.
type Line struct {
	Text         string
	StartResidue int
	EndResidue   int
}

// Annotation is one structure track split into wrapped lines.
type Annotation struct {
	Name  string
	Lines []Line
}

// Segment is a maximal run of one structure symbol inside a line,
// spanning [Start, End) in line-local character offsets.
type Segment struct {
	Sym   byte
	Start int
	End   int
}

// Wrap slices text into lines of at most width characters and threads
// the running residue count through them. A sheet symbol that ends a
// line while the sheet continues on the next line is rewritten to the
// sheet-at-line-end marker, so the renderer can suppress the arrowhead.
// The rewrite is applied on the full string before slicing, since it
// looks across the line boundary.
func Wrap(name, text string, width int) Annotation {
	b := []byte(text)
	for k := width; k < len(b); k += width {
		if b[k-1] == symbol.Sheet && b[k] == symbol.Sheet {
			b[k-1] = symbol.SheetEnd
		}
	}
	a := Annotation{Name: name}
	count := 0
	for off := 0; off < len(b); off += width {
		end := off + width
		if end > len(b) {
			end = len(b)
		}
		chunk := string(b[off:end])
		start := count
		for i := 0; i < len(chunk); i++ {
			if !symbol.IsGap(chunk[i]) {
				count++
			}
		}
		a.Lines = append(a.Lines, Line{Text: chunk, StartResidue: start, EndResidue: count})
	}
	return a
}

// Segments splits one line into maximal same-symbol runs. Comparison is
// case-insensitive, so the sheet-at-line-end marker extends the sheet
// run it terminates; the closing run is then tagged with the marker
// itself when it is the line's last character.
func Segments(line string) []Segment {
	if line == "" {
		return nil
	}
	var segs []Segment
	start := 0
	for i := 1; i < len(line); i++ {
		if upper(line[i]) != upper(line[start]) {
			segs = append(segs, Segment{Sym: line[start], Start: start, End: i})
			start = i
		}
	}
	last := line[len(line)-1]
	closing := line[start]
	if last == symbol.SheetEnd {
		closing = symbol.SheetEnd
	}
	return append(segs, Segment{Sym: closing, Start: start, End: len(line)})
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
