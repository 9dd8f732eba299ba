// Command versalign aligns sequences of arbitrary motifs from the
// command line: pairwise global/local alignment and progressive
// multiple sequence alignment over FASTA-style input.
package main

func main() {
	Execute()
}
