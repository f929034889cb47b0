package lint

import (
	"errors"

	"github.com/yaklabco/ssmlcheck/pkg/ssml"
)

// Kind distinguishes the two ways a document can fail validation.
type Kind string

const (
	// KindMalformed means the input is not well-formed XML.
	KindMalformed Kind = "malformed"

	// KindRuleViolation means a recognized tag broke its rule.
	KindRuleViolation Kind = "rule-violation"
)

// Diagnostic describes why a document is invalid. It implements error.
type Diagnostic struct {
	// Kind classifies the failure.
	Kind Kind

	// RuleID is the identifier of the rule that produced this diagnostic.
	// Empty for malformed markup.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "break-time").
	RuleName string

	// Message is the human-readable reason.
	Message string

	// Tag is the element name the rule applies to.
	Tag string

	// Attribute is the attribute that is missing or invalid.
	Attribute string

	// Value is the rejected attribute value. Empty when Missing is set.
	Value string

	// Missing is true when the required attribute is absent.
	Missing bool

	// Line and Column locate the offending start tag (1-based).
	// For malformed markup only Line is set.
	Line   int
	Column int
}

// Error implements error.
func (d *Diagnostic) Error() string {
	return d.Message
}

// newMalformedDiagnostic converts a parse failure into a Diagnostic.
func newMalformedDiagnostic(err error) *Diagnostic {
	diag := &Diagnostic{
		Kind:    KindMalformed,
		Message: err.Error(),
	}

	var syntaxErr *ssml.SyntaxError
	if errors.As(err, &syntaxErr) {
		diag.Line = syntaxErr.Line
	}

	return diag
}

// Result is the outcome of one validation call: either valid (no
// diagnostic) or invalid with exactly one diagnostic.
type Result struct {
	// Diagnostic is nil when the document is valid.
	Diagnostic *Diagnostic
}

// IsValid reports whether the document passed every check.
func (r Result) IsValid() bool {
	return r.Diagnostic == nil
}

// Reason returns the failure message, or "" when valid.
func (r Result) Reason() string {
	if r.Diagnostic == nil {
		return ""
	}
	return r.Diagnostic.Message
}

// Err returns the diagnostic as an error, or nil when valid.
func (r Result) Err() error {
	if r.Diagnostic == nil {
		return nil
	}
	return r.Diagnostic
}
