// Package ssml provides the Markup Document model for SSML input and a
// parser that builds it from text with entity resolution disabled.
package ssml

// Namespace is the W3C SSML namespace URI. Elements in this namespace are
// treated the same as elements with no namespace.
const Namespace = "http://www.w3.org/2001/10/synthesis"

// Element is a single node of a Markup Document.
type Element struct {
	// Name is the local tag name (e.g. "break").
	Name string

	// Space is the resolved namespace URI, empty when the element has none.
	Space string

	// Attrs maps attribute names to values. Attributes without a namespace
	// are keyed by their local name; namespaced ones as "{uri}local".
	// Namespace declarations are not included.
	Attrs map[string]string

	// Children are the child elements in document order.
	Children []*Element

	// Parent is nil for the root element.
	Parent *Element

	// Line and Column locate the start tag (1-based).
	Line   int
	Column int
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// IsSSML reports whether the element has no namespace or the SSML one.
func (e *Element) IsSSML() bool {
	return e.Space == "" || e.Space == Namespace
}

// Tag returns the element name in Clark notation when it has a namespace,
// otherwise the local name.
func (e *Element) Tag() string {
	if e.Space == "" {
		return e.Name
	}
	return "{" + e.Space + "}" + e.Name
}

// Document is a parsed Markup Document.
type Document struct {
	// Root is the single top-level element. Never nil for a parsed document.
	Root *Element
}
