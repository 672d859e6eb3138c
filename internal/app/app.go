// internal/app/app.go
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"ssdraw/internal/alignment"
	"ssdraw/internal/cli"
	"ssdraw/internal/cmdutil"
	"ssdraw/internal/fasta"
	"ssdraw/internal/layout"
	"ssdraw/internal/output"
	"ssdraw/internal/render"
	"ssdraw/internal/symbol"
	"ssdraw/internal/version"
)

// Exit codes: 0 ok, 1 input error (open failure, structural mismatch),
// 2 option/configuration error, 3 output-write failure.
const (
	exitOK     = 0
	exitInput  = 1
	exitUsage  = 2
	exitOutput = 3
)

func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("ssdraw")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return exitOK
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return exitUsage
	}
	if opts.Version {
		fmt.Fprintf(stdout, "ssdraw version %s\n", version.Version)
		return exitOK
	}
	return run(opts, stderr)
}

func run(opts cli.Options, stderr io.Writer) int {
	structs, err := fasta.Read(opts.Structures, symbol.Structures)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInput
	}
	if len(structs) == 0 {
		fmt.Fprintf(stderr, "no FASTA records in %s\n", opts.Structures)
		return exitInput
	}

	names := make([]string, len(structs))
	tracks := make([]string, len(structs))
	for i, r := range structs {
		names[i] = r.Name
		tracks[i] = symbol.Normalize(r.Seq)
	}

	// With a sequence file each structure was predicted on the degapped
	// sequence; re-expand it to the reference gap pattern. Without one
	// the predictions are already aligned to each other.
	var refs []string
	if opts.Sequences != "" {
		seqs, err := fasta.Read(opts.Sequences, symbol.Residues)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitInput
		}
		if len(seqs) != len(structs) {
			fmt.Fprintf(stderr, "%d structure and %d sequence records: %v\n",
				len(structs), len(seqs), alignment.ErrLengthMismatch)
			return exitInput
		}
		raw := make([]string, len(seqs))
		for i, r := range seqs {
			raw[i] = r.Seq
		}
		refs, err = alignment.RemoveCommonGaps(raw)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitInput
		}
	}
	expanded, err := alignment.Reinsert(refs, tracks)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInput
	}

	annos := make([]layout.Annotation, len(expanded))
	for i, s := range expanded {
		annos[i] = layout.Wrap(names[i], s, opts.Residues)
	}

	cfg := opts.Layout()
	geom := render.NewGeometry(cfg, len(annos))
	if _, err := geom.BlocksPerPage(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var sinks []*render.TextSink
	if err := render.Emit(cfg, annos, func(int) render.Sink {
		s := render.NewTextSink(geom)
		sinks = append(sinks, s)
		return s
	}); err != nil {
		fmt.Fprintln(stderr, err)
		return exitInput
	}

	pages := make([][]byte, len(sinks))
	for i, s := range sinks {
		pages[i] = s.Bytes()
	}
	written, err := output.WritePages(opts.Output, pages)
	for _, name := range written {
		cmdutil.Notef(stderr, opts.Quiet, "wrote %s", name)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitOutput
	}
	return exitOK
}
