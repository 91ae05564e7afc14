// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/jcodec"
)

// MaxDepth is the maximum nesting depth of arrays and objects accepted by
// Parse. Deeper input is reported as a syntax error.
const MaxDepth = 10000

// ParseError is the concrete type of errors reported by the parser.
type ParseError struct {
	Pos     jcodec.Position // location of the offending token
	Message string
	Token   jcodec.Token // the offending token
}

// Error satisfies the error interface.
func (e *ParseError) Error() string { return fmt.Sprintf("%s %s", e.Pos, e.Message) }

// ParseString tokenizes and parses a single JSON value from src.
func ParseString(src string) (Value, error) { return Parse(jcodec.Tokenize(src)) }

// Parse parses a single JSON value from a complete token sequence, as
// produced by jcodec.Tokenize. The value must be followed only by EOF.
// In case of error, the returned error has type [*ParseError] and no value
// is returned.
//
// String values and object keys are unescaped. If an object has duplicate
// keys, the last value wins and the member keeps the position of the first
// occurrence of its key.
//
// Arrays and objects may be nested at most MaxDepth deep.
//
// Parse panics if tokens is empty or does not end with an EOF token.
func Parse(tokens []jcodec.Token) (_ Value, err error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != jcodec.EOF {
		panic("ast: token sequence does not end with EOF")
	}
	p := &parser{toks: tokens}
	defer recoverParseError(&err)

	v := p.parseValue()
	if tok := p.cur(); tok.Type != jcodec.EOF {
		panic(p.syntaxError(tok, "trailing tokens after value"))
	}
	return v, nil
}

// A parser is a recursive-descent parser over a token sequence.
type parser struct {
	toks  []jcodec.Token
	i     int // offset of the current token
	depth int // number of open arrays and objects
}

func recoverParseError(errp *error) {
	if x := recover(); x != nil {
		perr, ok := x.(*ParseError)
		if !ok {
			panic(x)
		}
		*errp = perr
	}
}

// parseValue consumes a single value of any type.
func (p *parser) parseValue() Value {
	switch tok := p.cur(); tok.Type {
	case jcodec.LBrace:
		return p.parseObject()
	case jcodec.LBracket:
		return p.parseArray()
	case jcodec.String:
		p.advance()
		return String(p.unquote(tok))
	case jcodec.Number:
		p.advance()
		return numberValue(tok)
	case jcodec.True, jcodec.False:
		p.advance()
		return Bool(tok.Type == jcodec.True)
	case jcodec.Null:
		p.advance()
		return Null{}
	default:
		panic(p.syntaxError(tok, "unexpected token"))
	}
}

// parseObject consumes zero or more key:value object members.
// Precondition: token == LBrace.
// Postcondition: the closing RBrace is consumed.
func (p *parser) parseObject() Value {
	p.push()
	defer p.pop()
	p.advance()
	obj := Object{}
	if p.cur().Type == jcodec.RBrace {
		p.advance()
		return obj // empty object
	}

	seen := make(map[string]int)
	for {
		// Parse a single member: "key": value
		key := p.unquote(p.require(jcodec.String, "expected key"))
		p.require(jcodec.Colon, "expected ':'")
		val := p.parseValue()
		if i, ok := seen[key]; ok {
			obj[i].Value = val
		} else {
			seen[key] = len(obj)
			obj = append(obj, &Member{Key: key, Value: val})
		}

		// Check whether we have more members (",") or are done ("}").
		switch tok := p.cur(); tok.Type {
		case jcodec.Comma:
			p.advance()
		case jcodec.RBrace:
			p.advance()
			return obj
		default:
			panic(p.syntaxError(tok, "expected ',' or '}'"))
		}
	}
}

// parseArray consumes zero or more comma-separated array values.
// Precondition: token == LBracket.
// Postcondition: the closing RBracket is consumed.
func (p *parser) parseArray() Value {
	p.push()
	defer p.pop()
	p.advance()
	arr := Array{}
	if p.cur().Type == jcodec.RBracket {
		p.advance()
		return arr // empty array
	}
	for {
		arr = append(arr, p.parseValue())

		switch tok := p.cur(); tok.Type {
		case jcodec.Comma:
			p.advance()
		case jcodec.RBracket:
			p.advance()
			return arr
		default:
			panic(p.syntaxError(tok, "expected ',' or ']'"))
		}
	}
}

// push records entry into the array or object opened by the current token.
func (p *parser) push() {
	p.depth++
	if p.depth > MaxDepth {
		panic(p.syntaxError(p.cur(), "nesting too deep"))
	}
}

func (p *parser) pop() { p.depth-- }

// cur returns the current token.
func (p *parser) cur() jcodec.Token { return p.toks[p.i] }

// advance moves to the next token. It does not move past EOF.
func (p *parser) advance() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
}

// require consumes and returns the current token if it has type want, or
// panics with a syntax error carrying msg.
func (p *parser) require(want jcodec.TokenType, msg string) jcodec.Token {
	tok := p.cur()
	if tok.Type != want {
		panic(p.syntaxError(tok, msg))
	}
	p.advance()
	return tok
}

// unquote decodes the text of a string token.
func (p *parser) unquote(tok jcodec.Token) string {
	text, _ := tok.Value.(string)
	dec, err := jcodec.Unquote(text)
	if err != nil {
		panic(p.syntaxError(tok, "invalid string escape"))
	}
	return dec
}

// syntaxError constructs a syntax error at tok. An illegal token is always
// reported as such, regardless of what the parser expected.
func (p *parser) syntaxError(tok jcodec.Token, msg string) *ParseError {
	if tok.Type == jcodec.Illegal {
		msg = "illegal token"
	}
	return &ParseError{Pos: tok.Pos, Message: msg, Token: tok}
}

func numberValue(tok jcodec.Token) Number {
	switch v := tok.Value.(type) {
	case int64:
		return Int(v)
	case float64:
		return Float(v)
	default:
		panic(fmt.Sprintf("ast: invalid number payload %T", tok.Value))
	}
}
