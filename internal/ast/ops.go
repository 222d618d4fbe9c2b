package ast

// CmpOp is a comparison operator inside a Compare chain.
type CmpOp uint8

const (
	CmpEq CmpOp = iota
	CmpNotEq
	CmpLt
	CmpLtE
	CmpGt
	CmpGtE
	CmpIs
	CmpIsNot
	CmpIn
	CmpNotIn
)

func (op CmpOp) String() string {
	switch op {
	case CmpEq:
		return "=="
	case CmpNotEq:
		return "!="
	case CmpLt:
		return "<"
	case CmpLtE:
		return "<="
	case CmpGt:
		return ">"
	case CmpGtE:
		return ">="
	case CmpIs:
		return "is"
	case CmpIsNot:
		return "is not"
	case CmpIn:
		return "in"
	case CmpNotIn:
		return "not in"
	}
	return "?"
}

// BoolOpKind distinguishes "and" from "or".
type BoolOpKind uint8

const (
	BoolAnd BoolOpKind = iota
	BoolOr
)

func (op BoolOpKind) String() string {
	if op == BoolOr {
		return "or"
	}
	return "and"
}

// UnaryOpKind is a unary operator.
type UnaryOpKind uint8

const (
	UnaryNot UnaryOpKind = iota
	UnaryNeg
	UnaryPos
	UnaryInvert
)

func (op UnaryOpKind) String() string {
	switch op {
	case UnaryNot:
		return "not"
	case UnaryNeg:
		return "-"
	case UnaryPos:
		return "+"
	case UnaryInvert:
		return "~"
	}
	return "?"
}

// BinOpKind is an arithmetic binary operator.
type BinOpKind uint8

const (
	BinAdd BinOpKind = iota
	BinSub
	BinMul
	BinDiv
	BinFloorDiv
	BinMod
	BinPow
)

func (op BinOpKind) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinFloorDiv:
		return "//"
	case BinMod:
		return "%"
	case BinPow:
		return "**"
	}
	return "?"
}
