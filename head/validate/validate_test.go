package validate

import (
	"reflect"
	"testing"
)

type scriptValidationTestcase struct {
	name  string
	attrs AttrMap
	want  []Violation // nil means accept
}

var scriptValidationTests = []scriptValidationTestcase{
	{
		name:  "empty mapping accepted",
		attrs: AttrMap{},
	},
	{
		name:  "nil mapping accepted",
		attrs: nil,
	},
	{
		name: "fully populated valid script",
		attrs: AttrMap{
			"async":          true,
			"crossorigin":    "anonymous",
			"defer":          "true",
			"fetchpriority":  "high",
			"integrity":      "sha384-abc",
			"nomodule":       false,
			"nonce":          "n0nce",
			"referrerpolicy": "no-referrer",
			"src":            "a.js",
			"type":           "text/javascript",
			"key":            "analytics",
			"children":       "",
			"data-domain":    "example.com",
		},
	},
	{
		name:  "defer with src accepted",
		attrs: AttrMap{"src": "a.js", "defer": "true"},
	},
	{
		name:  "defer without src rejected",
		attrs: AttrMap{"defer": "true"},
		want: []Violation{
			{KindConsistency, RuleDeferRequiresSrc, "defer must not be used without src"},
		},
	},
	{
		name:  "defer with empty src rejected",
		attrs: AttrMap{"defer": "true", "src": ""},
		want: []Violation{
			{KindConsistency, RuleDeferRequiresSrc, "defer must not be used without src"},
		},
	},
	{
		name:  "defer on module script rejected",
		attrs: AttrMap{"src": "a.js", "type": "module", "defer": "true"},
		want: []Violation{
			{KindConsistency, RuleDeferModule, "defer must not be used when type is module"},
		},
	},
	{
		name:  "deferred module without src fails both rules in order",
		attrs: AttrMap{"type": "module", "defer": "true"},
		want: []Violation{
			{KindConsistency, RuleDeferRequiresSrc, "defer must not be used without src"},
			{KindConsistency, RuleDeferModule, "defer must not be used when type is module"},
		},
	},
	{
		name:  "empty defer is not presence",
		attrs: AttrMap{"defer": ""},
	},
	{
		name:  "mistyped defer is not presence",
		attrs: AttrMap{"defer": true},
		want: []Violation{
			{KindType, "defer", "expected a string, got bool"},
		},
	},
	{
		name:  "bad crossorigin value",
		attrs: AttrMap{"crossorigin": "invalid-value"},
		want: []Violation{
			{KindEnum, "crossorigin", `"invalid-value" is not one of [anonymous, use-credentials]`},
		},
	},
	{
		name:  "bad fetchpriority value",
		attrs: AttrMap{"fetchpriority": "urgent"},
		want: []Violation{
			{KindEnum, "fetchpriority", `"urgent" is not one of [high, low, auto]`},
		},
	},
	{
		name:  "empty string enum members accepted",
		attrs: AttrMap{"referrerpolicy": "", "type": ""},
	},
	{
		name:  "mistyped enum field is a type violation",
		attrs: AttrMap{"type": true},
		want: []Violation{
			{KindType, "type", "expected a string, got bool"},
		},
	},
	{
		name:  "string instead of boolean on async",
		attrs: AttrMap{"async": "yes"},
		want: []Violation{
			{KindType, "async", "expected a boolean, got string"},
		},
	},
	{
		name:  "unknown string attribute accepted",
		attrs: AttrMap{"data-turbo": "false"},
	},
	{
		name:  "unknown non-string attribute rejected",
		attrs: AttrMap{"data-count": 3},
		want: []Violation{
			{KindType, "data-count", "expected a string, got int"},
		},
	},
	{
		name: "field violations precede rule violations, unknowns sorted",
		attrs: AttrMap{
			"async": "yes",
			"defer": "true",
			"zzz":   1,
			"aaa":   2,
		},
		want: []Violation{
			{KindType, "async", "expected a boolean, got string"},
			{KindType, "aaa", "expected a string, got int"},
			{KindType, "zzz", "expected a string, got int"},
			{KindConsistency, RuleDeferRequiresSrc, "defer must not be used without src"},
		},
	},
}

func TestScript(t *testing.T) {
	for _, tt := range scriptValidationTests {
		t.Run(tt.name, func(t *testing.T) {
			got := Script(tt.attrs)
			if got.OK() != (tt.want == nil) {
				t.Errorf("OK() = %v, want %v", got.OK(), tt.want == nil)
			}
			if !reflect.DeepEqual(got.Violations, tt.want) {
				t.Errorf("violations = %#v, want %#v", got.Violations, tt.want)
			}
		})
	}
}

func TestScriptIdempotent(t *testing.T) {
	attrs := AttrMap{"defer": "true", "type": "module", "async": 1}
	first := Script(attrs)
	second := Script(attrs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation differs: %#v vs %#v", first, second)
	}
}

func TestScriptsMatchesIndividualValidation(t *testing.T) {
	list := []AttrMap{
		{"src": "a.js", "defer": "true"},
		{"defer": "true"},
		{},
		{"crossorigin": "nope"},
	}
	results := Scripts(list)
	if len(results) != len(list) {
		t.Fatalf("got %d results for %d inputs", len(results), len(list))
	}
	for i, attrs := range list {
		if !reflect.DeepEqual(results[i], Script(attrs)) {
			t.Errorf("results[%d] differs from standalone validation", i)
		}
	}
}

func TestViolationString(t *testing.T) {
	v := Violation{KindConsistency, RuleDeferRequiresSrc, "defer must not be used without src"}
	want := "defer-requires-src: defer must not be used without src"
	if v.String() != want {
		t.Errorf("String() = %q, want %q", v.String(), want)
	}
}
