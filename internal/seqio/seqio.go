// Package seqio reads and writes motif sequences in a FASTA-style text
// format: a ">identifier" header line followed by sequence lines with
// one rune per motif. A '-' reads back as a Gap, so aligned output
// written by this package round-trips.
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moltools/versalign-go/internal/motif"
	"github.com/moltools/versalign-go/internal/sequence"
)

// Read parses all records from r. Blank lines are skipped; data before
// the first header is an error.
func Read(r io.Reader) ([]*sequence.Sequence, error) {
	scanner := bufio.NewScanner(r)

	var out []*sequence.Sequence
	var id string
	var motifs []motif.Motif
	inRecord := false

	flush := func() error {
		s, err := sequence.New(id, motifs)
		if err != nil {
			return fmt.Errorf("seqio: record %q: %w", id, err)
		}
		out = append(out, s)
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			if inRecord {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			id = strings.TrimSpace(strings.TrimPrefix(line, ">"))
			motifs = nil
			inRecord = true
			continue
		}

		if !inRecord {
			return nil, fmt.Errorf("seqio: sequence data before first header: %q", line)
		}
		for _, r := range line {
			if r == '-' {
				motifs = append(motifs, motif.Gap{})
			} else {
				motifs = append(motifs, motif.Symbol(r))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seqio: %w", err)
	}

	if inRecord {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReadFile parses all records from the file at path.
func ReadFile(path string) ([]*sequence.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Write renders sequences to w, one header and one sequence line per
// record. Gaps render as '-'.
func Write(w io.Writer, seqs []*sequence.Sequence) error {
	for _, s := range seqs {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", s.ID(), s); err != nil {
			return fmt.Errorf("seqio: %w", err)
		}
	}
	return nil
}
