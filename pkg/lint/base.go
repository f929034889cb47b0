package lint

import "slices"

// BaseRule provides a default implementation of the Rule metadata methods.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id     string   // Unique identifier (e.g., "SSML001")
	name   string   // Human-readable name
	desc   string   // Detailed description
	tag    string   // Element local name
	attr   string   // Required attribute
	values []string // Built-in accepted values
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc, tag, attr string, values []string) BaseRule {
	return BaseRule{
		id:     id,
		name:   name,
		desc:   desc,
		tag:    tag,
		attr:   attr,
		values: values,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Tag returns the element name the rule applies to.
func (r *BaseRule) Tag() string {
	return r.tag
}

// Attribute returns the attribute the rule requires.
func (r *BaseRule) Attribute() string {
	return r.attr
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultValues returns a copy of the built-in accepted values.
func (r *BaseRule) DefaultValues() []string {
	return slices.Clone(r.values)
}
