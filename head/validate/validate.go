// Package validate checks candidate script-element attribute mappings against
// the attribute types and value sets declared in head/spec, plus the two
// cross-field rules tying defer to src and to the script type. Validation is
// a pure function: no I/O, no state, and a failed check produces a Result
// rather than an error.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"gohead/head/spec"
)

// AttrMap is one candidate script element: attribute names mapped to values.
// Well-known boolean attributes carry bool values, everything else carries
// strings. The key set is open.
type AttrMap = map[string]any

type fieldCheck struct {
	name  string
	check func(name string, val any) *Violation
}

// scriptFields lists the well-known attributes in declared order, which is
// also the order field violations are reported in.
var scriptFields = []fieldCheck{
	{"async", boolCheck},
	{"crossorigin", enumCheck(spec.CrossOriginValues)},
	{"defer", stringCheck},
	{"fetchpriority", enumCheck(spec.FetchPriorityValues)},
	{"integrity", stringCheck},
	{"nomodule", boolCheck},
	{"nonce", stringCheck},
	{"referrerpolicy", enumCheck(spec.ReferrerPolicyValues)},
	{"src", stringCheck},
	{"type", enumCheck(spec.ScriptTypeValues)},
	{"key", stringCheck},
	{"children", stringCheck},
}

// Script validates a single attribute mapping. Every present field is checked
// against its declared type or value set, unrecognized fields are accepted as
// long as they carry strings, and both cross-field rules are evaluated
// regardless of earlier failures, so a mapping can collect several violations
// in one pass. An empty mapping is accepted.
func Script(attrs AttrMap) Result {
	var out []Violation
	for _, f := range scriptFields {
		val, ok := attrs[f.name]
		if !ok {
			continue
		}
		if v := f.check(f.name, val); v != nil {
			out = append(out, *v)
		}
	}

	var unknown []string
	for k := range attrs {
		if !knownField(k) {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		if v := stringCheck(k, attrs[k]); v != nil {
			out = append(out, *v)
		}
	}

	// Cross-field rules, both always evaluated. A string attribute counts as
	// set only when present with a non-empty value, matching how HTML treats
	// bare boolean attributes like defer="".
	if truthy(attrs, "defer") {
		if !truthy(attrs, "src") {
			out = append(out, Violation{
				Kind:    KindConsistency,
				Field:   RuleDeferRequiresSrc,
				Message: "defer must not be used without src",
			})
		}
		if t, ok := attrs["type"].(string); ok && spec.ScriptType(t) == spec.ScriptTypeModule {
			out = append(out, Violation{
				Kind:    KindConsistency,
				Field:   RuleDeferModule,
				Message: "defer must not be used when type is module",
			})
		}
	}

	return Result{Violations: out}
}

// Scripts validates each mapping independently and returns the results in
// input order. One element's validity never affects another's.
func Scripts(list []AttrMap) []Result {
	out := make([]Result, len(list))
	for i, attrs := range list {
		out[i] = Script(attrs)
	}
	return out
}

func knownField(name string) bool {
	for _, f := range scriptFields {
		if f.name == name {
			return true
		}
	}
	return false
}

func truthy(attrs AttrMap, name string) bool {
	s, ok := attrs[name].(string)
	return ok && s != ""
}

func boolCheck(name string, val any) *Violation {
	if _, ok := val.(bool); ok {
		return nil
	}
	return &Violation{
		Kind:    KindType,
		Field:   name,
		Message: fmt.Sprintf("expected a boolean, got %T", val),
	}
}

func stringCheck(name string, val any) *Violation {
	if _, ok := val.(string); ok {
		return nil
	}
	return &Violation{
		Kind:    KindType,
		Field:   name,
		Message: fmt.Sprintf("expected a string, got %T", val),
	}
}

func enumCheck(values func() []string) func(name string, val any) *Violation {
	return func(name string, val any) *Violation {
		s, ok := val.(string)
		if !ok {
			return stringCheck(name, val)
		}
		allowed := values()
		for _, m := range allowed {
			if s == m {
				return nil
			}
		}
		return &Violation{
			Kind:    KindEnum,
			Field:   name,
			Message: fmt.Sprintf("%q is not one of [%s]", s, strings.Join(allowed, ", ")),
		}
	}
}
