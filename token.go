// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcodec

import "fmt"

// TokenType is the type of a lexical token in the JSON grammar.
type TokenType byte

// Constants defining the valid TokenType values.
const (
	Illegal  TokenType = iota // malformed input
	LBrace                    // left brace "{"
	RBrace                    // right brace "}"
	LBracket                  // left square bracket "["
	RBracket                  // right square bracket "]"
	Colon                     // colon ":"
	Comma                     // comma ","
	String                    // quoted string
	Number                    // integer or floating-point number
	True                      // constant: true
	False                     // constant: false
	Null                      // constant: null
	EOF                       // end of input
)

var tokenStr = [...]string{
	Illegal:  "illegal",
	LBrace:   `"{"`,
	RBrace:   `"}"`,
	LBracket: `"["`,
	RBracket: `"]"`,
	Colon:    `":"`,
	Comma:    `","`,
	String:   "string",
	Number:   "number",
	True:     "true",
	False:    "false",
	Null:     "null",
	EOF:      "EOF",
}

func (t TokenType) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Illegal]
	}
	return tokenStr[v]
}

// A Token is a single lexical token and its location in the source.
//
// The concrete type of Value is determined by Type:
//
//	Type                   | Value
//	---------------------- | -----------------------------------------------
//	punctuation            | string, the literal character
//	String                 | string, the raw text between the quotes
//	Number                 | int64 or float64
//	True, False            | bool
//	Null                   | string, "null"
//	Illegal                | string, the offending character
//	EOF                    | nil
//
// The text of a String token is not unescaped; see Unquote.
type Token struct {
	Type  TokenType
	Value any
	Pos   Position
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return fmt.Sprintf("%v %v", t.Pos, t.Type)
	case String:
		return fmt.Sprintf(`%v %v "%s"`, t.Pos, t.Type, t.Value)
	default:
		return fmt.Sprintf("%v %v %v", t.Pos, t.Type, t.Value)
	}
}
