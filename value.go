package treeopt

import (
	"math"
	"strconv"
	"strings"
)

// Value is one of Int, Uint, Str, Float or Bool. The set is closed.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

type (
	Int   int64
	Uint  uint64
	Str   string
	Float float64
	Bool  bool
)

func (Int) Kind() Kind   { return KindInt }
func (Uint) Kind() Kind  { return KindUint }
func (Str) Kind() Kind   { return KindStr }
func (Float) Kind() Kind { return KindFloat }
func (Bool) Kind() Kind  { return KindBool }

func (v Int) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Uint) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Str) String() string  { return string(v) }
func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

func (Int) isValue()   {}
func (Uint) isValue()  {}
func (Str) isValue()   {}
func (Float) isValue() {}
func (Bool) isValue()  {}

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindStr:
		return "string"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// TypeName is the placeholder shown in usage text for options of kind k
func (k Kind) TypeName() string {
	switch k {
	case KindInt:
		return "INT"
	case KindUint:
		return "UINT"
	case KindStr:
		return "STRING"
	case KindFloat:
		return "FLOAT"
	}

	return ""
}

// yamlScalar returns the YAML tag and text for v
func yamlScalar(v Value) (tag, text string) {
	switch v := v.(type) {
	case Int:
		return "!!int", v.String()
	case Uint:
		return "!!int", v.String()
	case Bool:
		return "!!bool", v.String()
	case Str:
		return "!!str", string(v)
	case Float:
		f := float64(v)
		switch {
		case math.IsNaN(f):
			return "!!float", ".nan"
		case math.IsInf(f, 1):
			return "!!float", ".inf"
		case math.IsInf(f, -1):
			return "!!float", "-.inf"
		}
		text = v.String()
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
		return "!!float", text
	}

	return "!!str", v.String()
}
