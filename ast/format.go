// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Serialize returns the compact JSON encoding of v. Object members are
// rendered in their stored order, with no added whitespace.
//
// Serialize panics if v is nil or contains a nil value or a non-finite
// number.
func Serialize(v Value) string {
	if v == nil {
		panic("ast: serialize nil value")
	}
	return v.JSON()
}

// formatFloat renders f with the shortest digits that round-trip. Magnitudes
// in [1e-4, 1e16) use decimal notation with at least one fraction digit,
// others use exponent notation. The result always re-scans as a float.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic(fmt.Sprintf("ast: non-finite number %v", f))
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
