// Package extract parses an HTML document and materializes its head section
// into the typed model in head/spec. Parsing is read-only: nothing is
// fetched, mutated, or rendered back out.
package extract

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"gohead/head/spec"
)

// Parse reads an HTML document and returns its head contents in document
// order. Documents without an explicit head element still parse; the HTML
// tree builder synthesizes one, so the result is simply empty.
//
// Boolean attributes follow the HTML presence convention: async and nomodule
// become true whenever the attribute appears, and a valueless defer attribute
// is carried as the string "defer".
func Parse(r io.Reader) (*spec.Head, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html document")
	}

	head := &spec.Head{}
	if n := findElement(doc, "html"); n != nil {
		head.HTMLAttrs = htmlAttrs(n)
	}
	if n := findElement(doc, "body"); n != nil {
		head.BodyAttrs = bodyAttrs(n)
	}
	headNode := findElement(doc, "head")
	if headNode == nil {
		return head, nil
	}

	for c := headNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "title":
			head.Title = textContent(c)
		case "base":
			if head.Base == nil {
				head.Base = baseElement(c)
			}
		case "meta":
			head.Meta = append(head.Meta, metaElement(c))
		case "link":
			head.Link = append(head.Link, linkElement(c))
		case "style":
			head.Style = append(head.Style, styleElement(c))
		case "script":
			head.Script = append(head.Script, scriptElement(c))
		case "noscript":
			head.NoScript = append(head.NoScript, noScriptElement(c))
		}
	}
	return head, nil
}

// attrBag partitions an element's attributes into well-known names, handled
// by take, and an Extra map for everything else.
func attrBag(n *html.Node, take func(key, val string) bool) map[string]string {
	var extra map[string]string
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		if take(a.Key, a.Val) {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[a.Key] = a.Val
	}
	return extra
}

func scriptElement(n *html.Node) spec.Script {
	s := spec.Script{Children: textContent(n)}
	s.Extra = attrBag(n, func(key, val string) bool {
		switch key {
		case "async":
			s.Async = true
		case "nomodule":
			s.NoModule = true
		case "defer":
			if val == "" {
				val = "defer"
			}
			s.Defer = val
		case "crossorigin":
			s.CrossOrigin = spec.CrossOrigin(val)
		case "fetchpriority":
			s.FetchPriority = spec.FetchPriority(val)
		case "referrerpolicy":
			s.ReferrerPolicy = spec.ReferrerPolicy(val)
		case "type":
			s.Type = spec.ScriptType(val)
		case "integrity":
			s.Integrity = val
		case "nonce":
			s.Nonce = val
		case "src":
			s.Src = val
		default:
			return false
		}
		return true
	})
	return s
}

func baseElement(n *html.Node) *spec.Base {
	b := &spec.Base{}
	b.Extra = attrBag(n, func(key, val string) bool {
		switch key {
		case "href":
			b.Href = val
		case "target":
			b.Target = val
		default:
			return false
		}
		return true
	})
	return b
}

func metaElement(n *html.Node) spec.Meta {
	m := spec.Meta{}
	m.Extra = attrBag(n, func(key, val string) bool {
		switch key {
		case "charset":
			m.Charset = val
		case "content":
			m.Content = val
		case "http-equiv":
			m.HTTPEquiv = val
		case "media":
			m.Media = val
		case "name":
			m.Name = val
		case "property":
			m.Property = val
		default:
			return false
		}
		return true
	})
	return m
}

func linkElement(n *html.Node) spec.Link {
	l := spec.Link{}
	l.Extra = attrBag(n, func(key, val string) bool {
		switch key {
		case "as":
			l.As = val
		case "crossorigin":
			l.CrossOrigin = spec.CrossOrigin(val)
		case "fetchpriority":
			l.FetchPriority = spec.FetchPriority(val)
		case "referrerpolicy":
			l.ReferrerPolicy = spec.ReferrerPolicy(val)
		case "href":
			l.Href = val
		case "hreflang":
			l.HrefLang = val
		case "imagesizes":
			l.ImageSizes = val
		case "imagesrcset":
			l.ImageSrcset = val
		case "integrity":
			l.Integrity = val
		case "media":
			l.Media = val
		case "rel":
			l.Rel = val
		case "sizes":
			l.Sizes = val
		case "title":
			l.Title = val
		case "type":
			l.Type = val
		default:
			return false
		}
		return true
	})
	return l
}

func styleElement(n *html.Node) spec.Style {
	s := spec.Style{Children: textContent(n)}
	s.Extra = attrBag(n, func(key, val string) bool {
		switch key {
		case "media":
			s.Media = val
		case "nonce":
			s.Nonce = val
		case "title":
			s.Title = val
		default:
			return false
		}
		return true
	})
	return s
}

func noScriptElement(n *html.Node) spec.NoScript {
	ns := spec.NoScript{Children: innerHTML(n)}
	ns.Extra = attrBag(n, func(key, val string) bool {
		return false
	})
	return ns
}

func htmlAttrs(n *html.Node) spec.HTMLAttrs {
	h := spec.HTMLAttrs{}
	h.Extra = attrBag(n, func(key, val string) bool {
		switch key {
		case "lang":
			h.Lang = val
		case "dir":
			h.Dir = val
		case "class":
			h.Class = val
		case "style":
			h.Style = val
		default:
			return false
		}
		return true
	})
	return h
}

func bodyAttrs(n *html.Node) spec.BodyAttrs {
	b := spec.BodyAttrs{}
	b.Extra = attrBag(n, func(key, val string) bool {
		switch key {
		case "class":
			b.Class = val
		case "style":
			b.Style = val
		default:
			return false
		}
		return true
	})
	return b
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// innerHTML re-serializes an element's children. Noscript bodies usually hold
// markup, not bare text, so text extraction alone would lose it. Text children
// are written verbatim: the tree builder leaves noscript content as raw text,
// and rendering would escape it.
func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			continue
		}
		if err := html.Render(&sb, c); err != nil {
			return textContent(n)
		}
	}
	return strings.TrimSpace(sb.String())
}
