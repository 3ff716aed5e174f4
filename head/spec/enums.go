package spec

// CrossOrigin is https://html.spec.whatwg.org/multipage/urls-and-fetching.html#cors-settings-attributes
type CrossOrigin string

const (
	CrossOriginAnonymous      CrossOrigin = "anonymous"
	CrossOriginUseCredentials CrossOrigin = "use-credentials"
)

var crossOrigins = []string{
	string(CrossOriginAnonymous),
	string(CrossOriginUseCredentials),
}

// CrossOriginValues returns the closed set of CORS settings values.
func CrossOriginValues() []string {
	return append([]string(nil), crossOrigins...)
}

func (c CrossOrigin) Valid() bool {
	return member(string(c), crossOrigins)
}

// FetchPriority is https://html.spec.whatwg.org/multipage/urls-and-fetching.html#fetch-priority-attributes
type FetchPriority string

const (
	FetchPriorityHigh FetchPriority = "high"
	FetchPriorityLow  FetchPriority = "low"
	FetchPriorityAuto FetchPriority = "auto"
)

var fetchPriorities = []string{
	string(FetchPriorityHigh),
	string(FetchPriorityLow),
	string(FetchPriorityAuto),
}

// FetchPriorityValues returns the closed set of fetch priority hints.
func FetchPriorityValues() []string {
	return append([]string(nil), fetchPriorities...)
}

func (f FetchPriority) Valid() bool {
	return member(string(f), fetchPriorities)
}

// ReferrerPolicy is https://w3c.github.io/webappsec-referrer-policy/#referrer-policy
// The empty string is a legal member and means "use the default policy".
type ReferrerPolicy string

const (
	ReferrerPolicyEmpty                       ReferrerPolicy = ""
	ReferrerPolicyNoReferrer                  ReferrerPolicy = "no-referrer"
	ReferrerPolicyNoReferrerWhenDowngrade     ReferrerPolicy = "no-referrer-when-downgrade"
	ReferrerPolicyOrigin                      ReferrerPolicy = "origin"
	ReferrerPolicyOriginWhenCrossOrigin       ReferrerPolicy = "origin-when-cross-origin"
	ReferrerPolicySameOrigin                  ReferrerPolicy = "same-origin"
	ReferrerPolicyStrictOrigin                ReferrerPolicy = "strict-origin"
	ReferrerPolicyStrictOriginWhenCrossOrigin ReferrerPolicy = "strict-origin-when-cross-origin"
	ReferrerPolicyUnsafeURL                   ReferrerPolicy = "unsafe-url"
)

var referrerPolicies = []string{
	string(ReferrerPolicyEmpty),
	string(ReferrerPolicyNoReferrer),
	string(ReferrerPolicyNoReferrerWhenDowngrade),
	string(ReferrerPolicyOrigin),
	string(ReferrerPolicyOriginWhenCrossOrigin),
	string(ReferrerPolicySameOrigin),
	string(ReferrerPolicyStrictOrigin),
	string(ReferrerPolicyStrictOriginWhenCrossOrigin),
	string(ReferrerPolicyUnsafeURL),
}

// ReferrerPolicyValues returns the closed set of referrer policy values.
func ReferrerPolicyValues() []string {
	return append([]string(nil), referrerPolicies...)
}

func (r ReferrerPolicy) Valid() bool {
	return member(string(r), referrerPolicies)
}

// ScriptType is https://html.spec.whatwg.org/multipage/scripting.html#attr-script-type
// The empty string is a legal member and behaves like a classic script.
type ScriptType string

const (
	ScriptTypeEmpty            ScriptType = ""
	ScriptTypeClassic          ScriptType = "text/javascript"
	ScriptTypeModule           ScriptType = "module"
	ScriptTypeJSON             ScriptType = "application/json"
	ScriptTypeLDJSON           ScriptType = "application/ld+json"
	ScriptTypeImportMap        ScriptType = "importmap"
	ScriptTypeSpeculationRules ScriptType = "speculationrules"
)

var scriptTypes = []string{
	string(ScriptTypeEmpty),
	string(ScriptTypeClassic),
	string(ScriptTypeModule),
	string(ScriptTypeJSON),
	string(ScriptTypeLDJSON),
	string(ScriptTypeImportMap),
	string(ScriptTypeSpeculationRules),
}

// ScriptTypeValues returns the closed set of script type values.
func ScriptTypeValues() []string {
	return append([]string(nil), scriptTypes...)
}

func (s ScriptType) Valid() bool {
	return member(string(s), scriptTypes)
}

func member(v string, set []string) bool {
	for _, m := range set {
		if v == m {
			return true
		}
	}
	return false
}
