package lint

import (
	"fmt"
	"slices"

	"github.com/yaklabco/ssmlcheck/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Values are the accepted attribute values.
	Values []string

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, sorted by ID. Config keys may be a rule ID,
// name or alias; an unknown key is an error.
func ResolveRules(registry *Registry, cfg *config.Config) ([]ResolvedRule, error) {
	byID := make(map[string]*config.RuleConfig)

	if cfg != nil {
		keys := make([]string, 0, len(cfg.Rules))
		for key := range cfg.Rules {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			id, _, ok := registry.Resolve(key)
			if !ok {
				return nil, fmt.Errorf("unknown rule %q in configuration", key)
			}
			if _, dup := byID[id]; dup {
				return nil, fmt.Errorf("rule %s configured more than once (via %q)", id, key)
			}
			byID[id] = cfg.Rule(key)
		}
	}

	var resolved []ResolvedRule
	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, byID[rule.ID()])
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved, nil
}

// resolveRule resolves the configuration for a single rule.
func resolveRule(rule Rule, ruleCfg *config.RuleConfig) ResolvedRule {
	rr := ResolvedRule{
		Rule:    rule,
		Enabled: rule.DefaultEnabled(),
		Values:  rule.DefaultValues(),
		Config:  ruleCfg,
	}

	if ruleCfg == nil {
		return rr
	}

	if ruleCfg.Enabled != nil {
		rr.Enabled = *ruleCfg.Enabled
	}
	if ruleCfg.Values != nil {
		rr.Values = slices.Clone(ruleCfg.Values)
	}

	return rr
}
