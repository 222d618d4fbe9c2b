package ast

// Kind tags every node in the arena. The set is closed: the dispatcher
// and the pretty-printer switch over it exhaustively.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Statements.
	KindModule
	KindIf
	KindWhile
	KindAssert
	KindAssign
	KindExprStmt

	// Expressions.
	KindName
	KindAttribute
	KindConst
	KindCall
	KindCompare
	KindBoolOp
	KindUnaryOp
	KindBinOp
	KindSubscript
	KindList
	KindTuple
	KindSet
	KindDict
	KindListComp
	KindSetComp
	KindDictComp
	KindGeneratorExp
	KindIfExp
)

var kindNames = map[Kind]string{
	KindInvalid:      "Invalid",
	KindModule:       "Module",
	KindIf:           "If",
	KindWhile:        "While",
	KindAssert:       "Assert",
	KindAssign:       "Assign",
	KindExprStmt:     "ExprStmt",
	KindName:         "Name",
	KindAttribute:    "Attribute",
	KindConst:        "Const",
	KindCall:         "Call",
	KindCompare:      "Compare",
	KindBoolOp:       "BoolOp",
	KindUnaryOp:      "UnaryOp",
	KindBinOp:        "BinOp",
	KindSubscript:    "Subscript",
	KindList:         "List",
	KindTuple:        "Tuple",
	KindSet:          "Set",
	KindDict:         "Dict",
	KindListComp:     "ListComp",
	KindSetComp:      "SetComp",
	KindDictComp:     "DictComp",
	KindGeneratorExp: "GeneratorExp",
	KindIfExp:        "IfExp",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsComprehension reports whether the kind is one of the comprehension or
// generator-expression forms.
func (k Kind) IsComprehension() bool {
	switch k {
	case KindListComp, KindSetComp, KindDictComp, KindGeneratorExp:
		return true
	}
	return false
}
