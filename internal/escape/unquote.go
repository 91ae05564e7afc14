// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes the text of a JSON string. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \u escape
// for a UTF-16 surrogate pair is decoded to a single rune; an unpaired
// surrogate is replaced by the Unicode replacement rune. Unquote reports an
// error for an unknown or incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeUnicode(src)
			if err != nil {
				return nil, err
			}
			dec = utf8.AppendRune(dec, r)
			src = rest
		default:
			return nil, fmt.Errorf("invalid escape %q", b)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}

// decodeUnicode decodes the four hex digits of a \u escape at the front of
// src. If they denote a high surrogate and a low surrogate escape follows,
// the pair is combined. It returns the decoded rune and the remaining input.
func decodeUnicode(src mem.RO) (rune, mem.RO, error) {
	r, err := parseHex4(src)
	if err != nil {
		return 0, src, err
	}
	src = src.SliceFrom(4)
	if !utf16.IsSurrogate(r) {
		return r, src, nil
	}
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if lo, err := parseHex4(src.SliceFrom(2)); err == nil {
			if c := utf16.DecodeRune(r, lo); c != utf8.RuneError {
				return c, src.SliceFrom(6), nil
			}
		}
	}
	return utf8.RuneError, src, nil
}

func parseHex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
