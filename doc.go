// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcodec implements a lexical scanner for JSON.
//
// # Scanning
//
// Tokenize scans a complete source string and returns its tokens in order.
// The sequence always ends with exactly one EOF token:
//
//	for _, tok := range jcodec.Tokenize(input) {
//	   log.Printf("Next token: %v", tok)
//	}
//
// Tokenize never fails. Malformed input produces Illegal tokens in the
// sequence, and scanning resumes after them. Reporting errors is left to the
// consumer of the tokens; see the ast package.
//
// # Tokens
//
// Each Token carries its type, a payload, and the position of its first
// character. Positions are 1-based lines and columns, where columns count
// runes and reset after each newline.
//
//	JSON text  | Type                       | Value
//	---------- | -------------------------- | -------------------------------
//	{ } [ ] :, | LBrace ... Comma           | the punctuation character
//	"..."      | String                     | raw text between the quotes
//	-1.5e3     | Number                     | int64 or float64
//	true false | True, False                | bool
//	null       | Null                       | "null"
//	--         | Illegal                    | the offending character
//	--         | EOF                        | nil
//
// The constants true, false, and null are matched without regard to case.
//
// A run of number characters (digits, "-", "+", ".", "e", "E") starting with
// a digit or "-" is an integer if it contains no decimal point and parses as
// an int64, otherwise a float if it parses as a float64. A run of letters
// that is not a constant, or a number run that does not parse, is an Illegal
// token whose Value is the last character of the run.
//
// String text is not unescaped by the scanner. Use Unquote to decode it, and
// Quote to encode a string for output.
package jcodec
