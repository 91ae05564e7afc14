// Package testutil defines support code for unit tests.
package testutil

import (
	"math"
	"math/rand/v2"

	"github.com/creachadair/jcodec"
	"github.com/creachadair/jcodec/ast"
)

// Types returns the token types of toks, in order.
func Types(toks []jcodec.Token) []jcodec.TokenType {
	out := make([]jcodec.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

// WithEOF returns types followed by a single EOF.
func WithEOF(types ...jcodec.TokenType) []jcodec.TokenType {
	return append(types, jcodec.EOF)
}

// stringRunes are drawn from to construct random strings. They include the
// characters that require escaping on output.
var stringRunes = []rune{
	'a', 'b', 'z', 'A', 'Q', '0', '7', ' ', '_', '-',
	'"', '\\', '/', '\n', '\r', '\t', '\b', '\f', 0, 0x1f, 0x7f,
	'é', 'ß', '世', 0x2028, 0x2029, 0xfffd, 0x1f600,
}

// RandomValue returns a pseudo-random value of nesting depth at most depth,
// using rng as a source of randomness. Object keys within a single object are
// unique, and numbers are finite.
func RandomValue(rng *rand.Rand, depth int) ast.Value {
	kind := rng.IntN(7)
	if depth <= 0 {
		kind = rng.IntN(5)
	}
	switch kind {
	case 0:
		return ast.Null{}
	case 1:
		return ast.Bool(rng.IntN(2) == 0)
	case 2:
		return ast.Int(randomInt(rng))
	case 3:
		return ast.Float(randomFloat(rng))
	case 4:
		return ast.String(RandomString(rng, 12))
	case 5:
		arr := make(ast.Array, rng.IntN(5))
		for i := range arr {
			arr[i] = RandomValue(rng, depth-1)
		}
		return arr
	default:
		n := rng.IntN(5)
		obj := make(ast.Object, 0, n)
		seen := make(map[string]bool)
		for range n {
			key := RandomString(rng, 6)
			if seen[key] {
				continue
			}
			seen[key] = true
			obj = append(obj, &ast.Member{Key: key, Value: RandomValue(rng, depth-1)})
		}
		return obj
	}
}

// RandomString returns a pseudo-random string of at most n runes.
func RandomString(rng *rand.Rand, n int) string {
	rs := make([]rune, rng.IntN(n+1))
	for i := range rs {
		rs[i] = stringRunes[rng.IntN(len(stringRunes))]
	}
	return string(rs)
}

func randomInt(rng *rand.Rand) int64 {
	switch rng.IntN(3) {
	case 0:
		return int64(rng.IntN(100))
	case 1:
		return -rng.Int64N(1 << 40)
	default:
		return rng.Int64()
	}
}

func randomFloat(rng *rand.Rand) float64 {
	f := rng.NormFloat64() * math.Pow(10, float64(rng.IntN(41)-20))
	if rng.IntN(4) == 0 {
		f = math.Trunc(f) // exercise integral floats
	}
	return f
}
