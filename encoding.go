// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcodec

import (
	"github.com/creachadair/jcodec/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes the raw text of a JSON string, as reported by the Value of
// a String token. The text must not include the enclosing quotation marks.
//
// Escape sequences are replaced with their unescaped equivalents. Unquote
// reports an error for an unknown or incomplete escape sequence.
func Unquote(text string) (string, error) {
	dec, err := escape.Unquote(mem.S(text))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
