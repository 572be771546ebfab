// Command mt19937 prints MT19937 output for a seed or key array.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/quality"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mt19937", flag.ContinueOnError)
	seed := fs.Uint("seed", 5489, "Scalar seed")
	keys := fs.String("keys", "", "Comma separated key array (overrides -seed)")
	count := fs.Int("n", 10, "Number of values to emit")
	format := fs.String("format", "u32", "Output format: u32 or f64")
	outputFile := fs.String("output", "", "Output CSV file (default stdout)")
	stateIn := fs.String("state-in", "", "Resume from a saved state file")
	stateOut := fs.String("state-out", "", "Save the final state to a file")
	check := fs.Bool("check", false, "Print a quality report instead of values")
	verbose := fs.Bool("verbose", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *seed > 0xffffffff {
		return fmt.Errorf("seed %d does not fit in 32 bits", *seed)
	}
	if *count < 0 {
		return fmt.Errorf("negative count %d", *count)
	}
	if *format != "u32" && *format != "f64" {
		return fmt.Errorf("unknown format %q", *format)
	}

	g, err := newGenerator(uint32(*seed), *keys, *stateIn)
	if err != nil {
		return err
	}

	if *verbose {
		switch {
		case *stateIn != "":
			fmt.Fprintf(stdout, "Resumed state from %s\n", *stateIn)
		case *keys != "":
			fmt.Fprintf(stdout, "Seeded from keys %s\n", *keys)
		default:
			fmt.Fprintf(stdout, "Seeded with %d\n", *seed)
		}
	}

	if *check {
		cfg := quality.DefaultConfig()
		if *count > 10 {
			cfg.Samples = *count
		}
		r, err := quality.Check(g, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, r)
		if !r.Pass(1e-4) {
			return errors.New("quality check failed")
		}
	} else if err := emit(g, *count, *format, *outputFile, stdout); err != nil {
		return err
	}

	if *stateOut != "" {
		data, err := g.MarshalBinary()
		if err != nil {
			return err
		}
		if err := os.WriteFile(*stateOut, data, 0o644); err != nil {
			return err
		}
		if *verbose {
			fmt.Fprintf(stdout, "Saved state to %s\n", *stateOut)
		}
	}

	return nil
}

func newGenerator(seed uint32, keys, stateFile string) (*mt19937.Generator, error) {
	if stateFile != "" {
		data, err := os.ReadFile(stateFile)
		if err != nil {
			return nil, err
		}
		g := mt19937.New(0)
		if err := g.UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("%s: %w", stateFile, err)
		}
		return g, nil
	}

	if keys == "" {
		return mt19937.New(seed), nil
	}
	k, err := parseKeys(keys)
	if err != nil {
		return nil, err
	}
	return mt19937.NewFromSlice(k)
}

// parseKeys parses a comma separated list of 32-bit words.
func parseKeys(s string) ([]uint32, error) {
	fields := strings.Split(s, ",")
	keys := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("key %d: %v", i, err)
		}
		keys[i] = uint32(v)
	}
	return keys, nil
}

// emit writes count values, one per CSV row, to file or stdout.
func emit(g *mt19937.Generator, count int, format, filename string, stdout io.Writer) error {
	out := stdout
	if filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	writer := csv.NewWriter(out)
	for range count {
		var val string
		if format == "f64" {
			val = strconv.FormatFloat(g.Float64(), 'g', -1, 64)
		} else {
			val = strconv.FormatUint(uint64(g.Uint32()), 10)
		}
		if err := writer.Write([]string{val}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
