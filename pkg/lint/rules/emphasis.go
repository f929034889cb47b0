package rules

import (
	"fmt"

	"github.com/yaklabco/ssmlcheck/pkg/lint"
	"github.com/yaklabco/ssmlcheck/pkg/ssml"
)

// EmphasisLevelRule requires <emphasis> to carry a supported level.
type EmphasisLevelRule struct {
	lint.BaseRule
}

// NewEmphasisLevelRule creates a new emphasis-level rule.
func NewEmphasisLevelRule() *EmphasisLevelRule {
	return &EmphasisLevelRule{
		BaseRule: lint.NewBaseRule(
			"SSML002",
			"emphasis-level",
			"<emphasis> must have a level attribute of strong, moderate, reduced or none",
			"emphasis",
			"level",
			[]string{"strong", "moderate", "reduced", "none"},
		),
	}
}

// Check validates the level attribute of an <emphasis> element.
func (r *EmphasisLevelRule) Check(ctx *lint.RuleContext, elem *ssml.Element) *lint.Diagnostic {
	value, ok := elem.Attr(r.Attribute())
	if !ok {
		return lint.NewDiagnostic(r, elem, missingMessage(r)).AsMissing().Build()
	}

	if !ctx.Accepts(value) {
		return lint.NewDiagnostic(r, elem,
			fmt.Sprintf("<emphasis> tag has invalid level value '%s'", value)).
			WithValue(value).
			Build()
	}

	return nil
}
