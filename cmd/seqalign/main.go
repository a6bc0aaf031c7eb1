// Command seqalign provides a CLI for pairwise sequence alignment.
//
// Usage:
//
//	seqalign [command] [options]
//
// Commands:
//
//	align       Align two sequences
//	batch       Align a query against every record of a FASTA file
//	matrix      Print the bundled BLOSUM62 matrix
//	info        Show sequence information
//	version     Show version information
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/innaky/seqalign/pkg/seqalign"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "align":
		alignCmd(os.Args[2:])
	case "batch":
		batchCmd(os.Args[2:])
	case "matrix":
		fmt.Print(seqalign.BLOSUM62().String())
	case "info":
		infoCmd(os.Args[2:])
	case "version":
		fmt.Println(seqalign.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`seqalign - pairwise sequence alignment

Usage:
  seqalign <command> [options]

Commands:
  align     Align two sequences (global or local, linear or affine gaps)
  batch     Align a query against every record of a FASTA file
  matrix    Print the bundled BLOSUM62 matrix
  info      Show sequence information
  version   Show version information
  help      Show this help message

Use "seqalign <command> -h" for more information about a command.`)
}

// scoringFlags registers the shared scoring options on fs and returns a
// builder that assembles a Params record after parsing.
func scoringFlags(fs *flag.FlagSet) func() seqalign.Params {
	defaults := seqalign.DefaultParams()
	match := fs.Int("match", defaults.Match, "match score (nucleic only)")
	mismatch := fs.Int("mismatch", defaults.Mismatch, "mismatch score (nucleic only)")
	transition := fs.Int("transition", 0, "transition score, A<->G / C<->T (nucleic only)")
	useTransition := fs.Bool("use-transition", false, "enable transition scoring")
	gap := fs.Int("gap", defaults.Gap, "gap (open) score, negative")
	gapExtend := fs.Int("gap-extend", defaults.GapExtend, "gap extension score, negative")
	terminalGap := fs.Int("terminal-gap", 0, "terminal gap score")
	useTerminal := fs.Bool("use-terminal-gap", false, "price terminal gaps separately")
	terminalExtend := fs.Int("terminal-gap-extend", 0, "terminal gap extension score")

	return func() seqalign.Params {
		p := seqalign.DefaultParams()
		p.Match, p.Mismatch = *match, *mismatch
		p.Gap, p.GapExtend = *gap, *gapExtend
		if *useTransition {
			p.Transition = seqalign.Int(*transition)
		}
		if *useTerminal {
			p.TerminalGap = seqalign.Int(*terminalGap)
			p.TerminalGapExtend = seqalign.Int(*terminalExtend)
		}
		return p
	}
}

func newRecord(residues, typ string) (*seqalign.Sequence, error) {
	if typ == "aa" {
		return seqalign.NewProteinSequence(residues)
	}
	return seqalign.NewSequence(residues)
}

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	mode := fs.String("mode", "global", "alignment mode: global or local")
	typ := fs.String("type", "na", "sequence type: na or aa")
	affine := fs.Bool("affine", false, "use affine gap penalties")
	params := scoringFlags(fs)
	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "align: expected exactly two sequences")
		os.Exit(1)
	}

	seq1, err := newRecord(fs.Arg(0), *typ)
	if err != nil {
		fatal(err)
	}
	seq2, err := newRecord(fs.Arg(1), *typ)
	if err != nil {
		fatal(err)
	}

	switch *mode {
	case "global":
		result, err := seqalign.AlignGlobalWithParams(seq1, seq2, params(), *affine)
		if err != nil {
			fatal(err)
		}
		fmt.Println(result.Format())
	case "local":
		result, err := seqalign.AlignLocalWithParams(seq1, seq2, params(), *affine)
		if err != nil {
			fatal(err)
		}
		fmt.Println(result.Format())
		fmt.Printf("Ungapped: %s / %s\n", result.UngappedSeq1, result.UngappedSeq2)
	default:
		fmt.Fprintf(os.Stderr, "align: unknown mode %q\n", *mode)
		os.Exit(1)
	}
}

func batchCmd(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file with target sequences")
	typ := fs.String("type", "na", "sequence type: na or aa")
	fs.Parse(args)

	if fs.NArg() != 1 || *file == "" {
		fmt.Fprintln(os.Stderr, "batch: expected a query sequence and -file")
		os.Exit(1)
	}

	query, err := newRecord(fs.Arg(0), *typ)
	if err != nil {
		fatal(err)
	}

	seqType := seqalign.DNA
	if *typ == "aa" {
		seqType = seqalign.Protein
	}
	targets, err := seqalign.ReadFASTA(*file, seqType)
	if err != nil {
		fatal(err)
	}

	alignments, err := seqalign.AlignAgainstMultiple(query, targets)
	if err != nil {
		fatal(err)
	}

	for _, a := range alignments {
		id := targets[a.Index].ID
		fmt.Printf("%-20s score=%-6d identity=%.1f%%\n", id, a.Alignment.Score, a.Alignment.Identity()*100)
	}

	summary, err := seqalign.BatchStats(alignments)
	if err != nil {
		fatal(err)
	}
	fmt.Println(summary)

	best, err := seqalign.FindBestAlignment(query, targets)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("\nBest hit: %s\n%s\n", targets[best.Index].ID, best.Alignment.Format())
}

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file to inspect")
	typ := fs.String("type", "na", "sequence type: na or aa")
	fs.Parse(args)

	seqType := seqalign.DNA
	if *typ == "aa" {
		seqType = seqalign.Protein
	}

	var records []*seqalign.Sequence
	if *file != "" {
		var err error
		records, err = seqalign.ReadFASTA(*file, seqType)
		if err != nil {
			fatal(err)
		}
	} else if fs.NArg() == 1 {
		rec, err := newRecord(fs.Arg(0), *typ)
		if err != nil {
			fatal(err)
		}
		records = append(records, rec)
	} else {
		fmt.Fprintln(os.Stderr, "info: expected a sequence or -file")
		os.Exit(1)
	}

	for _, rec := range records {
		fmt.Println(rec)
		if rec.Type != seqalign.Protein {
			fmt.Printf("  GC content: %.1f%%\n", rec.GCContent()*100)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
