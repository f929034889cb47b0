// Package lint provides the rule engine, diagnostics, registry and the
// validation pass for ssmlcheck.
package lint

import "github.com/yaklabco/ssmlcheck/pkg/ssml"

// Rule defines the interface that all tag rules must implement.
//
// A rule is bound to a single SSML element name and a single required
// attribute on it.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "SSML001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Tag returns the local element name this rule applies to.
	Tag() string

	// Attribute returns the attribute this rule requires.
	Attribute() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultValues returns the built-in accepted values. RuleConfig.Values
	// replaces them when set.
	DefaultValues() []string

	// Check inspects a single element whose tag matches Tag().
	// It returns nil when the element satisfies the rule.
	Check(ctx *RuleContext, elem *ssml.Element) *Diagnostic
}
