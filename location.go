package jcodec

import "fmt"

// A Position describes the line and column of a character in source text.
type Position struct {
	Line   int // line number, 1-based
	Column int // rune offset of column in line, 1-based
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// A tracker records the position of the next unconsumed character as runes
// are consumed from the input.
type tracker struct {
	line, col int
}

func newTracker() tracker { return tracker{line: 1, col: 1} }

// pos returns the position of the next unconsumed character.
func (t *tracker) pos() Position { return Position{Line: t.line, Column: t.col} }

// advance records the consumption of ch.
func (t *tracker) advance(ch rune) {
	if ch == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
}
