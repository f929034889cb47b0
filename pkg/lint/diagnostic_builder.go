package lint

import "github.com/yaklabco/ssmlcheck/pkg/ssml"

// DiagnosticBuilder helps construct Diagnostic values for rule violations.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a rule-violation diagnostic for the given
// rule and element.
func NewDiagnostic(rule Rule, elem *ssml.Element, message string) *DiagnosticBuilder {
	diag := Diagnostic{
		Kind:      KindRuleViolation,
		RuleID:    rule.ID(),
		RuleName:  rule.Name(),
		Message:   message,
		Tag:       rule.Tag(),
		Attribute: rule.Attribute(),
	}

	if elem != nil {
		diag.Line = elem.Line
		diag.Column = elem.Column
	}

	return &DiagnosticBuilder{diag: diag}
}

// WithValue records the rejected attribute value.
func (b *DiagnosticBuilder) WithValue(value string) *DiagnosticBuilder {
	b.diag.Value = value
	return b
}

// AsMissing marks the required attribute as absent.
func (b *DiagnosticBuilder) AsMissing() *DiagnosticBuilder {
	b.diag.Missing = true
	b.diag.Value = ""
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() *Diagnostic {
	diag := b.diag
	return &diag
}
