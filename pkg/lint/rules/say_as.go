package rules

import (
	"fmt"

	"github.com/yaklabco/ssmlcheck/pkg/lint"
	"github.com/yaklabco/ssmlcheck/pkg/ssml"
)

// SayAsInterpretAsRule requires <say-as> to carry a supported interpret-as.
type SayAsInterpretAsRule struct {
	lint.BaseRule
}

// NewSayAsInterpretAsRule creates a new say-as-interpret-as rule.
func NewSayAsInterpretAsRule() *SayAsInterpretAsRule {
	return &SayAsInterpretAsRule{
		BaseRule: lint.NewBaseRule(
			"SSML003",
			"say-as-interpret-as",
			"<say-as> must have an interpret-as attribute naming a supported interpretation",
			"say-as",
			"interpret-as",
			[]string{
				"date", "time", "telephone", "cardinal", "ordinal", "digits",
				"fraction", "unit", "verbatim", "spell-out", "currency",
			},
		),
	}
}

// Check validates the interpret-as attribute of a <say-as> element.
func (r *SayAsInterpretAsRule) Check(ctx *lint.RuleContext, elem *ssml.Element) *lint.Diagnostic {
	value, ok := elem.Attr(r.Attribute())
	if !ok {
		return lint.NewDiagnostic(r, elem, missingMessage(r)).AsMissing().Build()
	}

	if !ctx.Accepts(value) {
		return lint.NewDiagnostic(r, elem,
			fmt.Sprintf("<say-as> tag has invalid 'interpret-as' value '%s'", value)).
			WithValue(value).
			Build()
	}

	return nil
}
