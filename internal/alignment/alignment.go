// internal/alignment/alignment.go
package alignment

import (
	"errors"
	"fmt"

	"ssdraw/internal/symbol"
)

// ErrLengthMismatch is returned whenever structure and sequence records
// disagree in length, or distinct structure predictions do.
var ErrLengthMismatch = errors.New("inputs differ in length")

// RemoveCommonGaps drops every alignment column in which all sequences
// carry a gap, returning fresh strings. Columns to keep are collected in
// one forward pass, then the sequences are rebuilt from those indices.
// All sequences must have equal length.
func RemoveCommonGaps(seqs []string) ([]string, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	n := len(seqs[0])
	for _, s := range seqs[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("aligned sequences: %w", ErrLengthMismatch)
		}
	}
	keep := make([]int, 0, n)
	for col := 0; col < n; col++ {
		allGap := true
		for _, s := range seqs {
			if !symbol.IsGap(s[col]) {
				allGap = false
				break
			}
		}
		if !allGap {
			keep = append(keep, col)
		}
	}
	out := make([]string, len(seqs))
	for i, s := range seqs {
		b := make([]byte, len(keep))
		for j, col := range keep {
			b[j] = s[col]
		}
		out[i] = string(b)
	}
	return out, nil
}

// Reinsert expands each degapped structure annotation to the length and
// gap pattern of its reference sequence: a non-gap reference position
// consumes the next structure symbol, a gap position emits a gap marker.
// With no references (single-file mode) the structures pass through
// verbatim but must already agree in length with each other.
func Reinsert(refs, structs []string) ([]string, error) {
	if len(structs) == 0 {
		return nil, nil
	}
	if len(refs) == 0 {
		for _, s := range structs[1:] {
			if len(s) != len(structs[0]) {
				return nil, fmt.Errorf("structure predictions: %w", ErrLengthMismatch)
			}
		}
		return append([]string(nil), structs...), nil
	}
	if len(refs) != len(structs) {
		return nil, fmt.Errorf("structures/sequences: %w", ErrLengthMismatch)
	}
	out := make([]string, len(structs))
	for i, ref := range refs {
		st := structs[i]
		b := make([]byte, len(ref))
		next := 0
		for j := 0; j < len(ref); j++ {
			if symbol.IsGap(ref[j]) {
				b[j] = symbol.Gap
				continue
			}
			if next >= len(st) {
				return nil, fmt.Errorf("structures/sequences: %w", ErrLengthMismatch)
			}
			b[j] = st[next]
			next++
		}
		if next != len(st) {
			return nil, fmt.Errorf("structures/sequences: %w", ErrLengthMismatch)
		}
		out[i] = string(b)
	}
	return out, nil
}
