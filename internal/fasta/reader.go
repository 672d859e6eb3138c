// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"strings"
)

// Record is one named FASTA entry after alphabet filtering.
type Record struct {
	Name string
	Seq  string
}

// Read parses the FASTA file at path into records. A line starting with
// '>' opens a record named by the rest of the line; every other line is
// upper-cased and filtered to the characters of alphabet, so decoration
// (whitespace, asterisks, numbering) is dropped silently. Input that
// never opens a record yields an empty result, not an error.
func Read(path, alphabet string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	const maxLine = 16 * 1024 * 1024 // single-line sequences can be long
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs    []Record
		cur     Record
		started bool
	)
	flush := func() {
		if started {
			recs = append(recs, cur)
		}
	}
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, ">") {
			flush()
			cur = Record{Name: line[1:]}
			started = true
			continue
		}
		if !started {
			continue // junk before the first header
		}
		cur.Seq += filter(line, alphabet)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	flush()
	return recs, nil
}

// filter upper-cases line and keeps only characters of alphabet.
func filter(line, alphabet string) string {
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if strings.IndexByte(alphabet, c) >= 0 {
			b.WriteByte(c)
		}
	}
	return b.String()
}
