// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jcodec inspects, validates, and compacts JSON text.
//
// Usage:
//
//	jcodec tokens [input]    # print the lexical tokens of the input
//	jcodec check [input]     # report whether the input is a valid JSON value
//	jcodec compact [input]   # print the compact encoding of the input
//
// Each command reads standard input if no input path is given, or if the
// path is "-".
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jcodec"
	"github.com/creachadair/jcodec/ast"
	"github.com/creachadair/jcodec/codec"
)

type cli struct {
	Verbose bool `help:"Log input size and timing to stderr." short:"v"`

	Tokens  tokensCmd  `cmd:"" help:"Print the lexical tokens of the input."`
	Check   checkCmd   `cmd:"" help:"Report whether the input is a valid JSON value."`
	Compact compactCmd `cmd:"" help:"Print the compact encoding of the input."`
}

// env carries the I/O streams of a single invocation to the commands.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	log    *log.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command described by args and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts cli
	exit := -1
	k, err := kong.New(&opts,
		kong.Name("jcodec"),
		kong.Description("Inspect, validate, and compact JSON text."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exit = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "jcodec: %v\n", err)
		return 2
	}
	ctx, err := k.Parse(args)
	if exit >= 0 {
		return exit // e.g., --help
	} else if err != nil {
		fmt.Fprintf(stderr, "jcodec: %v\n", err)
		return 2
	}

	lg := log.New(io.Discard, "jcodec: ", 0)
	if opts.Verbose {
		lg.SetOutput(stderr)
	}
	if err := ctx.Run(&env{stdin: stdin, stdout: stdout, log: lg}); err != nil {
		fmt.Fprintf(stderr, "jcodec: %v\n", err)
		return 1
	}
	return 0
}

type tokensCmd struct {
	Input string `arg:"" optional:"" help:"Input file path (default stdin)."`
}

func (c *tokensCmd) Run(e *env) error {
	text, err := readInput(e, c.Input)
	if err != nil {
		return err
	}
	start := time.Now()
	toks := jcodec.Tokenize(text)
	e.log.Printf("scanned %d tokens [%v elapsed]", len(toks), time.Since(start))
	for _, tok := range toks {
		fmt.Fprintln(e.stdout, tok)
	}
	return nil
}

type checkCmd struct {
	Input string `arg:"" optional:"" help:"Input file path (default stdin)."`
}

func (c *checkCmd) Run(e *env) error {
	if _, err := parseInput(e, c.Input); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, "OK")
	return nil
}

type compactCmd struct {
	Input string `arg:"" optional:"" help:"Input file path (default stdin)."`
}

func (c *compactCmd) Run(e *env) error {
	v, err := parseInput(e, c.Input)
	if err != nil {
		return err
	}
	if err := codec.Dump(v, e.stdout); err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout)
	return err
}

// readInput returns the complete text of the named input, or of stdin if
// path is empty or "-".
func readInput(e *env, path string) (string, error) {
	r, name := e.stdin, "stdin"
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r, name = f, path
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	e.log.Printf("read %d bytes from %s", len(data), name)
	return string(data), nil
}

// parseInput reads and parses the named input.
func parseInput(e *env, path string) (ast.Value, error) {
	text, err := readInput(e, path)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	v, err := codec.Loads(text)
	e.log.Printf("parsed input [%v elapsed]", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	return v, nil
}
