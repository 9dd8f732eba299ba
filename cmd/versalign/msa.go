package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moltools/versalign-go/config"
	"github.com/moltools/versalign-go/pkg/versalign"
)

// msaCmd aligns all records of a FASTA-style file into a multiple
// sequence alignment and writes the result to stdout.
var msaCmd = &cobra.Command{
	Use:   "msa",
	Short: "Multiple-sequence-align all records of a file",
	RunE:  runMSA,
}

func init() {
	msaCmd.Flags().String("file", "", "FASTA-style input file (required)")
	msaCmd.Flags().Float64("gap", 2, "gap penalty")
	msaCmd.Flags().Float64("end-gap", 1, "end gap penalty")
	msaCmd.Flags().Float64("match", 1, "match score")
	msaCmd.Flags().Float64("mismatch", -1, "mismatch score")
	msaCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(msaCmd)
}

func runMSA(cmd *cobra.Command, args []string) error {
	bindAlignFlags(cmd)

	file, _ := cmd.Flags().GetString("file")
	seqs, err := versalign.ReadFASTA(file)
	if err != nil {
		return err
	}
	if len(seqs) == 0 {
		return fmt.Errorf("%s: no records found", file)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	aligned, err := versalign.MSA(seqs,
		cfg.Align.GapPenalty, cfg.Align.EndGapPenalty,
		versalign.SimpleScore(cfg.Align.Match, cfg.Align.Mismatch))
	if err != nil {
		return err
	}

	return versalign.WriteFASTA(os.Stdout, aligned)
}
