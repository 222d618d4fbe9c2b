package checkers

import (
	"fmt"
	"strings"

	"github.com/romarionagy/pylint/internal/ast"
	"github.com/romarionagy/pylint/internal/diag"
)

// OldName is a retired identifier a rule used to be published under.
// Configurations referring to it still resolve to the current rule.
type OldName struct {
	Code   string
	Symbol string
}

// MessageDef declares one rule: its diagnostic code, symbolic name, the
// message template rendered into diagnostics, a long-form explanation for
// `rules` listings, the activation default and any legacy aliases.
type MessageDef struct {
	Code           diag.Code
	Symbol         string
	Template       string
	Description    string
	DefaultEnabled bool
	OldNames       []OldName
}

var messages = []MessageDef{
	{
		Code:   diag.ImplicitBooleanessNotLen,
		Symbol: "use-implicit-booleaness-not-len",
		Template: "Do not use `len(SEQUENCE)` without comparison to determine " +
			"if a sequence is empty",
		Description: "Empty sequences are considered false in a boolean context. " +
			"You can either remove the call to 'len' (`if not x`) or compare the " +
			"length against a scalar (`if len(x) > 1`).",
		DefaultEnabled: true,
		OldNames:       []OldName{{Code: "C1801", Symbol: "len-as-condition"}},
	},
	{
		Code:   diag.ImplicitBooleanessNotComparison,
		Symbol: "use-implicit-booleaness-not-comparison",
		Template: "'%s' can be simplified to '%s', if it is strictly a sequence, " +
			"as an empty %s is falsey",
		Description: "Empty sequences are considered false in a boolean context. " +
			"Following this check blindly in weakly typed code bases can create " +
			"hard to debug issues: if the value can be something else that is " +
			"falsey but not a sequence (`None`, an empty string, `0`) the " +
			"simplified code is not equivalent.",
		DefaultEnabled: true,
	},
	{
		Code:   diag.ImplicitBooleanessNotComparisonToString,
		Symbol: "use-implicit-booleaness-not-comparison-to-string",
		Template: "'%s' can be simplified to '%s', if it is strictly a string, " +
			"as an empty string is falsey",
		Description: "Empty strings are considered false in a boolean context. " +
			"Only enable this rule where values compared to '' are known to be " +
			"strings: for a value that may also be None or 0 the simplified " +
			"form changes behaviour.",
		DefaultEnabled: false,
		OldNames:       []OldName{{Code: "C1901", Symbol: "compare-to-empty-string"}},
	},
	{
		Code:   diag.ImplicitBooleanessNotComparisonToZero,
		Symbol: "use-implicit-booleaness-not-comparison-to-zero",
		Template: "'%s' can be simplified to '%s', if it is strictly an int or " +
			"float value, as 0 is falsey",
		Description: "The number 0 is considered false in a boolean context. " +
			"Only enable this rule where values compared to 0 are known to be " +
			"numeric: for a value that may also be None or '' the simplified " +
			"form changes behaviour.",
		DefaultEnabled: false,
		OldNames:       []OldName{{Code: "C2001", Symbol: "compare-to-zero"}},
	},
}

// nodeInterests lists the node kinds the checker wants to visit and the
// codes that justify visiting each kind. A kind is only dispatched when at
// least one of its codes is enabled.
var nodeInterests = map[ast.Kind][]diag.Code{
	ast.KindCall:    {diag.ImplicitBooleanessNotLen},
	ast.KindUnaryOp: {diag.ImplicitBooleanessNotLen},
	ast.KindCompare: {
		diag.ImplicitBooleanessNotComparison,
		diag.ImplicitBooleanessNotComparisonToZero,
		diag.ImplicitBooleanessNotComparisonToString,
	},
}

// Messages returns the declared rule table in code order.
func Messages() []MessageDef {
	out := make([]MessageDef, len(messages))
	copy(out, messages)
	return out
}

// MessageByCode finds the rule declared under the given diagnostic code.
func MessageByCode(code diag.Code) (MessageDef, bool) {
	for _, m := range messages {
		if m.Code == code {
			return m, true
		}
	}
	return MessageDef{}, false
}

// ResolveRule maps a user-supplied name to a rule. Accepted forms: the
// symbolic name, the code ID ("C1803"), or any legacy alias of either kind.
func ResolveRule(name string) (MessageDef, bool) {
	name = strings.TrimSpace(name)
	for _, m := range messages {
		if strings.EqualFold(name, m.Symbol) || strings.EqualFold(name, m.Code.ID()) {
			return m, true
		}
		for _, old := range m.OldNames {
			if strings.EqualFold(name, old.Symbol) || strings.EqualFold(name, old.Code) {
				return m, true
			}
		}
	}
	return MessageDef{}, false
}

// RuleSet tracks which rules are active for a run.
type RuleSet struct {
	enabled map[diag.Code]bool
}

// DefaultRules returns a RuleSet with every rule at its declared default.
func DefaultRules() *RuleSet {
	rs := &RuleSet{enabled: make(map[diag.Code]bool, len(messages))}
	for _, m := range messages {
		rs.enabled[m.Code] = m.DefaultEnabled
	}
	return rs
}

// Enable switches a rule on by symbol, code ID or legacy alias.
func (rs *RuleSet) Enable(name string) error {
	return rs.set(name, true)
}

// Disable switches a rule off by symbol, code ID or legacy alias.
func (rs *RuleSet) Disable(name string) error {
	return rs.set(name, false)
}

func (rs *RuleSet) set(name string, on bool) error {
	m, ok := ResolveRule(name)
	if !ok {
		return fmt.Errorf("unknown rule %q", name)
	}
	rs.enabled[m.Code] = on
	return nil
}

// Enabled reports whether the given code is active.
func (rs *RuleSet) Enabled(code diag.Code) bool {
	return rs != nil && rs.enabled[code]
}

// WantsKind reports whether any rule interested in the kind is active.
func (rs *RuleSet) WantsKind(k ast.Kind) bool {
	for _, code := range nodeInterests[k] {
		if rs.Enabled(code) {
			return true
		}
	}
	return false
}
