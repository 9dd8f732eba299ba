package msa

import (
	"runtime"
	"sync"

	"github.com/moltools/versalign-go/internal/matrix"
	"github.com/moltools/versalign-go/internal/pairwise"
	"github.com/moltools/versalign-go/internal/scoring"
	"github.com/moltools/versalign-go/internal/sequence"
)

// similarityMatrix computes the symmetric all-pairs global alignment
// score matrix. The diagonal holds each sequence's self-alignment
// score. Pairs are independent, so they are scored concurrently by a
// bounded worker pool; each worker writes only its own pair's two
// cells, so the matrix needs no locking.
func similarityMatrix(seqs []*sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) *matrix.Matrix {
	n := len(seqs)
	m := matrix.New(n, n, 0)

	type pair struct{ i, j int }
	jobs := make(chan pair)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				v := pairwise.GlobalScore(seqs[p.i], seqs[p.j], gapPenalty, endGapPenalty, score)
				m.Set(p.i, p.j, v)
				if p.i != p.j {
					m.Set(p.j, p.i, v)
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			jobs <- pair{i, j}
		}
	}
	close(jobs)
	wg.Wait()

	return m
}
