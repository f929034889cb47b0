package lint

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/ssmlcheck/pkg/config"
)

// RuleContext provides everything a rule needs besides the element itself.
// It is built once per rule when a Validator is created and shared by every
// call, so rules must treat it as read-only.
type RuleContext struct {
	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Values are the accepted attribute values after applying RuleConfig.
	Values []string

	// Logger receives debug output from rules.
	Logger *log.Logger
}

// Accepts reports whether value is one of the accepted values.
func (rc *RuleContext) Accepts(value string) bool {
	return slices.Contains(rc.Values, value)
}
