package spec

// Script is https://html.spec.whatwg.org/multipage/scripting.html#the-script-element
// restricted to the attributes that matter for head management. Key is a
// deduplication identifier and Children is the inline script body; neither is
// a real HTML attribute, but both travel with the element. Defer is carried
// as a string because HTML serializes boolean attributes as bare presence.
type Script struct {
	Async                        bool
	NoModule                     bool
	CrossOrigin                  CrossOrigin
	FetchPriority                FetchPriority
	ReferrerPolicy               ReferrerPolicy
	Type                         ScriptType
	Defer, Integrity, Nonce, Src string
	Key, Children                string
	Extra                        map[string]string
}

// AttrMap lowers the typed script into the open attribute mapping consumed by
// the validator: booleans keep their type, string-backed fields are included
// only when non-empty, and Extra entries pass through untouched. A set known
// field wins over a colliding Extra key.
func (s *Script) AttrMap() map[string]any {
	m := make(map[string]any, len(s.Extra)+12)
	for k, v := range s.Extra {
		m[k] = v
	}
	if s.Async {
		m["async"] = true
	}
	if s.NoModule {
		m["nomodule"] = true
	}
	putString(m, "crossorigin", string(s.CrossOrigin))
	putString(m, "fetchpriority", string(s.FetchPriority))
	putString(m, "referrerpolicy", string(s.ReferrerPolicy))
	putString(m, "type", string(s.Type))
	putString(m, "defer", s.Defer)
	putString(m, "integrity", s.Integrity)
	putString(m, "nonce", s.Nonce)
	putString(m, "src", s.Src)
	putString(m, "key", s.Key)
	putString(m, "children", s.Children)
	return m
}

func putString(m map[string]any, key, val string) {
	if val != "" {
		m[key] = val
	}
}
