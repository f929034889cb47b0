package ssml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
)

// xmlnsPrefix is the attribute namespace encoding/xml reports for
// prefixed namespace declarations (xmlns:foo="...").
const xmlnsPrefix = "xmlns"

// xmlNamespace is bound to the reserved xml prefix in every document.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// namespaceScope maps the prefixes in scope at an element to their
// namespace names. The default namespace is stored under "".
type namespaceScope map[string]string

// with returns the scope for an element carrying attrs. The receiver is
// returned unchanged when attrs declare nothing.
func (s namespaceScope) with(attrs []xml.Attr) namespaceScope {
	var next namespaceScope
	for _, attr := range attrs {
		if !isNamespaceDecl(attr.Name) {
			continue
		}
		if next == nil {
			next = maps.Clone(s)
		}

		prefix := ""
		if attr.Name.Space == xmlnsPrefix {
			prefix = attr.Name.Local
		}
		next[prefix] = attr.Value
	}

	if next == nil {
		return s
	}
	return next
}

// binds reports whether space is a namespace name reachable from this
// scope. encoding/xml leaves an undeclared prefix untranslated in
// Name.Space, so an unbound prefix never matches.
func (s namespaceScope) binds(space string) bool {
	if space == "" {
		return true
	}
	for _, name := range s {
		if name == space {
			return true
		}
	}
	return false
}

// SyntaxError reports input that is not a well-formed XML document.
type SyntaxError struct {
	// Line is the 1-based line where the problem was detected.
	Line int

	// Msg describes the problem.
	Msg string

	// Err is the underlying decoder error, if any.
	Err error
}

// Error implements error using the same wording as encoding/xml.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("XML syntax error on line %d: %s", e.Line, e.Msg)
}

// Unwrap returns the underlying decoder error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse builds a Document from input.
//
// The decoder runs in strict mode with no entity table and no charset
// reader: only the predefined XML entities and character references are
// expanded, any other entity reference is a syntax error, and nothing is
// ever fetched from outside the input. Element and attribute prefixes must
// be declared. On failure Parse returns nil and a *SyntaxError.
func Parse(input string) (*Document, error) {
	decoder := xml.NewDecoder(strings.NewReader(input))
	decoder.Strict = true
	decoder.Entity = nil
	decoder.CharsetReader = nil

	var (
		root   *Element
		stack  []*Element
		scopes = []namespaceScope{{"xml": xmlNamespace}}
	)

	for {
		line, column := decoder.InputPos()

		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newSyntaxError(decoder, err)
		}

		switch token := tok.(type) {
		case xml.StartElement:
			scope := scopes[len(scopes)-1].with(token.Attr)

			elem, err := newElement(token, scope, line, column)
			if err != nil {
				return nil, err
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, &SyntaxError{Line: line, Msg: "extra content at the end of the document"}
				}
				root = elem
			} else {
				parent := stack[len(stack)-1]
				elem.Parent = parent
				parent.Children = append(parent.Children, elem)
			}
			stack = append(stack, elem)
			scopes = append(scopes, scope)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			scopes = scopes[:len(scopes)-1]

		case xml.CharData:
			if len(stack) == 0 && strings.TrimSpace(string(token)) != "" {
				if root == nil {
					return nil, &SyntaxError{Line: line, Msg: "content before the root element"}
				}
				return nil, &SyntaxError{Line: line, Msg: "extra content at the end of the document"}
			}
		}
	}

	if root == nil {
		line, _ := decoder.InputPos()
		return nil, &SyntaxError{Line: line, Msg: "document is empty"}
	}

	return &Document{Root: root}, nil
}

// newElement converts a start tag into an Element. Prefixes are resolved
// against scope.
func newElement(start xml.StartElement, scope namespaceScope, line, column int) (*Element, error) {
	if !scope.binds(start.Name.Space) {
		return nil, &SyntaxError{
			Line: line,
			Msg:  fmt.Sprintf("namespace prefix %s on %s is not defined", start.Name.Space, start.Name.Local),
		}
	}

	elem := &Element{
		Name:   start.Name.Local,
		Space:  start.Name.Space,
		Attrs:  make(map[string]string, len(start.Attr)),
		Line:   line,
		Column: column,
	}

	for _, attr := range start.Attr {
		if isNamespaceDecl(attr.Name) {
			continue
		}
		if !scope.binds(attr.Name.Space) {
			return nil, &SyntaxError{
				Line: line,
				Msg: fmt.Sprintf("namespace prefix %s for %s on %s is not defined",
					attr.Name.Space, attr.Name.Local, start.Name.Local),
			}
		}

		key := attr.Name.Local
		if attr.Name.Space != "" {
			key = "{" + attr.Name.Space + "}" + attr.Name.Local
		}

		if _, dup := elem.Attrs[key]; dup {
			return nil, &SyntaxError{
				Line: line,
				Msg:  fmt.Sprintf("attribute %s redefined", key),
			}
		}
		elem.Attrs[key] = attr.Value
	}

	return elem, nil
}

func isNamespaceDecl(name xml.Name) bool {
	return name.Space == xmlnsPrefix || (name.Space == "" && name.Local == xmlnsPrefix)
}

func newSyntaxError(decoder *xml.Decoder, err error) *SyntaxError {
	var xmlErr *xml.SyntaxError
	if errors.As(err, &xmlErr) {
		return &SyntaxError{Line: xmlErr.Line, Msg: xmlErr.Msg, Err: err}
	}

	line, _ := decoder.InputPos()
	return &SyntaxError{Line: line, Msg: err.Error(), Err: err}
}
