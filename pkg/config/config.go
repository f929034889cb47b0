// Package config defines core configuration types for ssmlcheck.
// These types are pure data structures; loading them from a source is left
// to the caller.
package config

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	// Enabled overrides the rule's default enablement when set.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Values overrides the rule's accepted attribute values. For the
	// break-time rule these are the accepted time units.
	Values []string `yaml:"values,omitempty,flow"`
}

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "break-time"
	RuleFormatID       RuleFormat = "id"       // "SSML001"
	RuleFormatCombined RuleFormat = "combined" // "SSML001/break-time"
)

// IsValid returns true if the rule format is known.
func (f RuleFormat) IsValid() bool {
	switch f {
	case RuleFormatName, RuleFormatID, RuleFormatCombined:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for ssmlcheck.
type Config struct {
	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules"`

	// RuleFormat controls how rule identifiers appear in output.
	// CLI-level option, not serialized.
	RuleFormat RuleFormat `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults: every rule keeps its
// built-in enablement and accepted values.
func NewConfig() *Config {
	return &Config{
		Rules:      make(map[string]RuleConfig),
		RuleFormat: RuleFormatName,
	}
}

// Rule returns the configuration for the given key, or nil if none is set.
func (c *Config) Rule(key string) *RuleConfig {
	if c == nil {
		return nil
	}
	rc, ok := c.Rules[key]
	if !ok {
		return nil
	}
	return &rc
}
