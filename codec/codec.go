// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package codec reads and writes JSON text using the jcodec lexer and the
// ast parser and serializer.
//
// Loads and Load parse a single JSON value; Dumps and Dump render a value
// as compact JSON:
//
//	v, err := codec.Loads(`{"a": [1, 2.5, true]}`)
//	if err != nil {
//	   log.Fatalf("Invalid input: %v", err)
//	}
//	fmt.Println(codec.Dumps(v)) // {"a":[1,2.5,true]}
package codec

import (
	"fmt"
	"io"

	"github.com/creachadair/jcodec"
	"github.com/creachadair/jcodec/ast"
)

// Loads parses a single JSON value from text. In case of a syntax error, the
// returned error has type [*ast.ParseError].
func Loads(text string) (ast.Value, error) {
	return ast.Parse(jcodec.Tokenize(text))
}

// Load reads all of r and parses a single JSON value from its contents.
func Load(r io.Reader) (ast.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Loads(string(data))
}

// Dumps returns the compact JSON encoding of v.
func Dumps(v ast.Value) string { return ast.Serialize(v) }

// Dump writes the compact JSON encoding of v to w.
func Dump(v ast.Value, w io.Writer) error {
	if _, err := io.WriteString(w, Dumps(v)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
