package treeopt

import (
	"math"
	"strings"

	"github.com/napalu/treeopt/internal/util"
)

// IsBoolLiteral reports whether token is a boolean literal. true and yes match
// in any case, false and no only in lower case.
func IsBoolLiteral(token string) bool {
	_, ok := parseBoolLiteral(token)
	return ok
}

func parseBoolLiteral(token string) (value, ok bool) {
	switch strings.ToLower(token) {
	case "true", "yes":
		return true, true
	}

	switch token {
	case "false", "no":
		return false, true
	}

	return false, false
}

// Coerce converts token into a Value for a slot of the expected kind.
//
// Precedence is fixed: boolean literals (true and yes in any case, false and
// no exactly), then a float for a Float slot, then a
// non-negative integer for a Uint or Int slot, then a signed integer for an Int
// slot. Anything else is returned verbatim as Str. Coerce never fails; a caller
// that needs the expected kind must compare the result's Kind.
func Coerce(token string, expected Kind) Value {
	if b, ok := parseBoolLiteral(token); ok {
		return Bool(b)
	}

	n, ok := util.ParseNumeric(token)
	if !ok {
		return Str(token)
	}

	if n.IsFloat && expected == KindFloat {
		return Float(n.Float)
	}

	if n.IsUint {
		switch expected {
		case KindUint:
			return Uint(n.Uint)
		case KindInt:
			if n.Uint <= math.MaxInt64 {
				return Int(n.Uint)
			}
		}
	}

	if n.IsInt && expected == KindInt {
		return Int(n.Int)
	}

	return Str(token)
}
