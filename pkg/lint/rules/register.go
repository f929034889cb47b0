package rules

import "github.com/yaklabco/ssmlcheck/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewBreakTimeRule())        // SSML001
	registry.Register(NewEmphasisLevelRule())    // SSML002
	registry.Register(NewSayAsInterpretAsRule()) // SSML003
}

// RegisterTagAliases lets configuration refer to a rule by the element
// name it checks (e.g. "say-as" -> SSML003).
func RegisterTagAliases(registry *lint.Registry) {
	for _, rule := range registry.Rules() {
		registry.RegisterAlias(rule.Tag(), rule.ID())
	}
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterTagAliases(lint.DefaultRegistry)
}
