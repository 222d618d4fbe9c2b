package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Implicit booleaness (1800-series)
	ImplicitBooleanessNotLen                Code = 1802
	ImplicitBooleanessNotComparison         Code = 1803
	ImplicitBooleanessNotComparisonToString Code = 1804
	ImplicitBooleanessNotComparisonToZero   Code = 1805

	// Ошибки I/O
	IOLoadFileError Code = 4001

	// Ошибки конфигурации
	ConfUnknownRule Code = 5001
	ConfParseError  Code = 5002

	// Ошибки снапшотов
	SnapDecodeError  Code = 6001
	SnapBadSchema    Code = 6002
	SnapBadReference Code = 6003
)

var ( // todo расширить описания и использовать как notes
	codeDescription = map[Code]string{
		UnknownCode:                             "Unknown error",
		ImplicitBooleanessNotLen:                "Do not use len(X) in boolean contexts",
		ImplicitBooleanessNotComparison:         "Do not compare against empty container literals",
		ImplicitBooleanessNotComparisonToString: "Do not compare against empty string",
		ImplicitBooleanessNotComparisonToZero:   "Do not compare against zero",
		IOLoadFileError:                         "I/O load file error",
		ConfUnknownRule:                         "Unknown rule in configuration",
		ConfParseError:                          "Configuration parse error",
		SnapDecodeError:                         "Snapshot decode error",
		SnapBadSchema:                           "Unsupported snapshot schema version",
		SnapBadReference:                        "Snapshot references a missing node",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 4000:
		return fmt.Sprintf("C%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("SNP%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
