package ast

import (
	"strconv"

	"github.com/romarionagy/pylint/internal/source"
)

// ConstKind tags the runtime type of a constant literal.
type ConstKind uint8

const (
	ConstNone ConstKind = iota
	ConstBool
	ConstInt
	ConstFloat
	ConstStr
	ConstBytes
)

// ConstValue is the evaluated value of a Const node. Only the field
// matching Kind is meaningful; Str holds an interned string for ConstStr
// and ConstBytes.
type ConstValue struct {
	Kind  ConstKind
	Bool  bool
	Int   int64
	Float float64
	Str   source.StringID
}

func NoneValue() ConstValue           { return ConstValue{Kind: ConstNone} }
func BoolValue(b bool) ConstValue     { return ConstValue{Kind: ConstBool, Bool: b} }
func IntValue(i int64) ConstValue     { return ConstValue{Kind: ConstInt, Int: i} }
func FloatValue(f float64) ConstValue { return ConstValue{Kind: ConstFloat, Float: f} }
func StrValue(s source.StringID) ConstValue {
	return ConstValue{Kind: ConstStr, Str: s}
}
func BytesValue(s source.StringID) ConstValue {
	return ConstValue{Kind: ConstBytes, Str: s}
}

// IsZeroNumber reports whether the constant is the numeric value 0.
// False compares equal to 0 in Python but is a distinct constant kind
// here, so it never matches.
func (v ConstValue) IsZeroNumber() bool {
	switch v.Kind {
	case ConstInt:
		return v.Int == 0
	case ConstFloat:
		return v.Float == 0
	}
	return false
}

// IsEmptyStr reports whether the constant is the empty string literal.
// The interner maps "" to NoStringID, so no lookup is needed.
func (v ConstValue) IsEmptyStr() bool {
	return v.Kind == ConstStr && v.Str == source.NoStringID
}

// ClassName returns the builtin class a constant belongs to, matching the
// names the inference engine uses.
func (v ConstValue) ClassName() string {
	switch v.Kind {
	case ConstNone:
		return "NoneType"
	case ConstBool:
		return "bool"
	case ConstInt:
		return "int"
	case ConstFloat:
		return "float"
	case ConstStr:
		return "str"
	case ConstBytes:
		return "bytes"
	}
	return ""
}

// Repr renders the constant the way Python source spells it.
func (v ConstValue) Repr(strings *source.Interner) string {
	switch v.Kind {
	case ConstNone:
		return "None"
	case ConstBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case ConstInt:
		return strconv.FormatInt(v.Int, 10)
	case ConstFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ConstStr, ConstBytes:
		text := ""
		if strings != nil {
			if s, ok := strings.Lookup(v.Str); ok {
				text = s
			}
		}
		quoted := strconv.Quote(text)
		// Python spells string literals with single quotes.
		body := quoted[1 : len(quoted)-1]
		if v.Kind == ConstBytes {
			return "b'" + body + "'"
		}
		return "'" + body + "'"
	}
	return "?"
}
