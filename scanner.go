// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcodec

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go4.org/mem"
)

// Tokenize scans src and returns its complete sequence of tokens. The result
// always ends with exactly one EOF token.
//
// Tokenize does not fail: malformed input is reported as Illegal tokens in
// the sequence, and scanning continues after them.
func Tokenize(src string) []Token {
	s := &scanner{src: src, loc: newTracker()}
	for s.pos < len(s.src) {
		s.next()
	}
	s.emit(EOF, nil, s.loc.pos())
	return s.toks
}

// A scanner holds the state of a single call to Tokenize.
type scanner struct {
	src  string
	pos  int // byte offset of the next unconsumed rune
	loc  tracker
	toks []Token
}

// next consumes at least one rune of input, emitting at most one token.
func (s *scanner) next() {
	start := s.loc.pos()
	ch, _ := s.peek()

	// Discard whitespace.
	if isSpace(ch) {
		s.rune()
		return
	}

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.rune()
		s.emit(t, string(ch), start)
		return
	}

	switch {
	case ch == '"':
		s.scanString(start)
	case isNumStart(ch):
		s.scanNumber(start)
	case unicode.IsLetter(ch):
		s.scanName(start)
	default:
		// Report the raw bytes, which may not be valid UTF-8.
		p := s.pos
		s.rune()
		s.emit(Illegal, s.src[p:s.pos], start)
	}
}

// scanString consumes a quoted string. The string ends at the first double
// quote not preceded by an odd number of backslashes.
func (s *scanner) scanString(start Position) {
	s.rune() // opening quote
	body := s.pos
	for s.pos < len(s.src) {
		if ch := s.rune(); ch == '"' {
			text := s.src[body : s.pos-1]
			if !isEscaped(text) {
				s.emit(String, text, start)
				return
			}
		}
	}

	// The input ended before the string was closed.
	s.emit(Illegal, `"`, start)
}

// scanNumber consumes a run of number characters. The run is an integer if it
// has no decimal point and parses as one, otherwise a float if it parses as
// one, and otherwise illegal.
func (s *scanner) scanNumber(start Position) {
	run := mem.S(s.readWhile(isNumRune))
	if mem.IndexByte(run, '.') < 0 {
		if z, err := mem.ParseInt(run, 10, 64); err == nil {
			s.emit(Number, z, start)
			return
		}
	}
	if f, err := mem.ParseFloat(run, 64); err == nil {
		s.emit(Number, f, start)
		return
	}
	s.emit(Illegal, lastRune(run.StringCopy()), start)
}

// scanName consumes a run of letters and matches it against the constants
// true, false, and null without regard to case.
func (s *scanner) scanName(start Position) {
	run := mem.S(s.readWhile(unicode.IsLetter))
	switch {
	case mem.EqualFold(run, mem.S("true")):
		s.emit(True, true, start)
	case mem.EqualFold(run, mem.S("false")):
		s.emit(False, false, start)
	case mem.EqualFold(run, mem.S("null")):
		s.emit(Null, "null", start)
	default:
		s.emit(Illegal, lastRune(run.StringCopy()), start)
	}
}

func (s *scanner) emit(t TokenType, v any, pos Position) {
	s.toks = append(s.toks, Token{Type: t, Value: v, Pos: pos})
}

// peek returns the next rune of input without consuming it.
func (s *scanner) peek() (rune, int) {
	if s.pos >= len(s.src) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

// rune consumes and returns the next rune of input.
func (s *scanner) rune() rune {
	ch, n := s.peek()
	s.pos += n
	s.loc.advance(ch)
	return ch
}

// readWhile consumes runes matching f and returns the text consumed.
func (s *scanner) readWhile(f func(rune) bool) string {
	p := s.pos
	for s.pos < len(s.src) {
		if ch, _ := s.peek(); !f(ch) {
			break
		}
		s.rune()
	}
	return s.src[p:s.pos]
}

// isEscaped reports whether a double quote immediately following text is
// escaped, meaning text ends with an odd number of backslashes.
func isEscaped(text string) bool {
	n := len(text) - len(strings.TrimRight(text, `\`))
	return n%2 == 1
}

// lastRune returns the last rune of s as a string.
func lastRune(s string) string {
	_, n := utf8.DecodeLastRuneInString(s)
	return s[len(s)-n:]
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isNumRune(ch rune) bool {
	return isDigit(ch) || ch == '-' || ch == '+' || ch == '.' || ch == 'e' || ch == 'E'
}

var self = [...]TokenType{LBrace, RBrace, LBracket, RBracket, Colon, Comma}

func selfDelim(ch rune) (TokenType, bool) {
	i := strings.IndexRune("{}[]:,", ch)
	if i >= 0 {
		return self[i], true
	}
	return Illegal, false
}
