package util

import (
	"strconv"
	"strings"
)

// Number records every numeric reading of a token. A token may be valid as
// more than one kind, "42" is an Int, a Uint and a Float at once.
type Number struct {
	Int     int64
	Uint    uint64
	Float   float64
	IsInt   bool
	IsUint  bool
	IsFloat bool
}

// ParseNumeric tries the token as a base-10 signed integer, a base-10 unsigned
// integer and a 64-bit float. A single leading '+' is accepted by all three.
// ok is false when none of them accept it.
func ParseNumeric(s string) (n Number, ok bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		n.Int = i
		n.IsInt = true
	}

	if u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64); err == nil {
		n.Uint = u
		n.IsUint = true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.Float = f
		n.IsFloat = true
	}

	return n, n.IsInt || n.IsUint || n.IsFloat
}
