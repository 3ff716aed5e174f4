// Package spec declares the shape of an HTML document's head section: the
// well-known elements and attributes as typed structs, the closed attribute
// value sets as enumerated string types, and an open Extra bag on each
// element for attributes the types don't name.
package spec

// Head is https://html.spec.whatwg.org/multipage/semantics.html#the-head-element
// modeled as ordered slices of its members. Order reflects document order.
type Head struct {
	Title         string
	TitleTemplate string
	Base          *Base
	Meta          []Meta
	Link          []Link
	Style         []Style
	Script        []Script
	NoScript      []NoScript
	HTMLAttrs     HTMLAttrs
	BodyAttrs     BodyAttrs
}

// Base is https://html.spec.whatwg.org/multipage/semantics.html#the-base-element
type Base struct {
	Href   string
	Target string
	Key    string
	Extra  map[string]string
}

// Meta is https://html.spec.whatwg.org/multipage/semantics.html#the-meta-element
type Meta struct {
	Charset   string
	Content   string
	HTTPEquiv string
	Media     string
	Name      string
	Property  string
	Key       string
	Extra     map[string]string
}

// Link is https://html.spec.whatwg.org/multipage/semantics.html#the-link-element
type Link struct {
	As             string
	CrossOrigin    CrossOrigin
	FetchPriority  FetchPriority
	ReferrerPolicy ReferrerPolicy
	Href           string
	HrefLang       string
	ImageSizes     string
	ImageSrcset    string
	Integrity      string
	Media          string
	Rel            string
	Sizes          string
	Title          string
	Type           string
	Key            string
	Extra          map[string]string
}

// Style is https://html.spec.whatwg.org/multipage/semantics.html#the-style-element
// Children holds the inline stylesheet text.
type Style struct {
	Media    string
	Nonce    string
	Title    string
	Key      string
	Children string
	Extra    map[string]string
}

// NoScript is https://html.spec.whatwg.org/multipage/scripting.html#the-noscript-element
type NoScript struct {
	Key      string
	Children string
	Extra    map[string]string
}

// HTMLAttrs carries attributes destined for the root html element.
type HTMLAttrs struct {
	Lang  string
	Dir   string
	Class string
	Style string
	Extra map[string]string
}

// BodyAttrs carries attributes destined for the body element.
type BodyAttrs struct {
	Class string
	Style string
	Extra map[string]string
}
