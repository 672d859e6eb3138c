// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"ssdraw/internal/render"
	"ssdraw/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input files
	Structures string // FASTA of secondary-structure annotations [*]
	Sequences  string // optional FASTA of aligned sequences

	// Output
	Output string // base name for the numbered command files

	// Page layout (centimetres unless noted)
	Width     float64
	Height    float64 // 0 = unconstrained, single page
	Indent    float64
	Residues  int // residues per line
	LineDist  float64
	BlockDist float64

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: secondary-structure diagram plotter

Converts aligned FASTA secondary-structure annotations (optionally
paired with aligned sequences) into numbered drawing-command files.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Built-in defaults may be overridden by SSDRAW_* environment variables
// (optionally loaded from a .env file); flags override both.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{
		Output:    "ssdraw",
		Width:     15,
		Height:    0,
		Indent:    2,
		Residues:  60,
		LineDist:  0.6,
		BlockDist: 1.0,
	}
	if err := applyEnv(&opt); err != nil {
		return opt, err
	}
	var help bool

	fs.StringVar(&opt.Structures, "structures", "", "FASTA file of structure annotations, '-' for STDIN [*]")
	fs.StringVar(&opt.Sequences, "sequences", "", "FASTA file of aligned sequences (optional)")
	fs.StringVar(&opt.Output, "output", opt.Output, "base name for numbered output files")

	fs.Float64Var(&opt.Width, "width", opt.Width, "image width in cm")
	fs.Float64Var(&opt.Height, "height", opt.Height, "maximum image height in cm (0 = unconstrained)")
	fs.Float64Var(&opt.Indent, "indent", opt.Indent, "left indent before the first residue in cm")
	fs.IntVar(&opt.Residues, "residues", opt.Residues, "residues per line")
	fs.Float64Var(&opt.LineDist, "line-dist", opt.LineDist, "distance between track lines in cm")
	fs.Float64Var(&opt.BlockDist, "block-dist", opt.BlockDist, "extra distance between blocks in cm")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress notes [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Structures == "" {
		return opt, errors.New("--structures is required")
	}
	if opt.Output == "" {
		return opt, errors.New("--output must not be empty")
	}
	if err := opt.Layout().Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}

// Layout bundles the page tunables for the emitter.
func (o Options) Layout() render.Config {
	return render.Config{
		Width:           o.Width,
		MaxHeight:       o.Height,
		Indent:          o.Indent,
		ResiduesPerLine: o.Residues,
		LineDist:        o.LineDist,
		BlockDist:       o.BlockDist,
	}
}
