package validate

import "fmt"

// Kind classifies a violation.
type Kind uint

const (
	// KindType means a field value has the wrong primitive type.
	KindType Kind = iota
	// KindEnum means a field value is outside the field's closed value set.
	KindEnum
	// KindConsistency means a cross-field rule failed.
	KindConsistency
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindEnum:
		return "enum"
	case KindConsistency:
		return "consistency"
	}
	return fmt.Sprintf("Kind(%d)", uint(k))
}

// Rule names reported in the Field of consistency violations.
const (
	RuleDeferRequiresSrc = "defer-requires-src"
	RuleDeferModule      = "defer-incompatible-with-module"
)

// Violation describes one failed check. Field holds the offending attribute
// name, or the rule name for consistency violations.
type Violation struct {
	Kind    Kind
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Result is the outcome of validating a single attribute mapping. The zero
// value is an accept.
type Result struct {
	Violations []Violation
}

// OK reports whether the mapping was accepted.
func (r Result) OK() bool {
	return len(r.Violations) == 0
}
