package rules

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/ssmlcheck/pkg/lint"
	"github.com/yaklabco/ssmlcheck/pkg/ssml"
)

// decimalNumberPattern matches a plain decimal float: optional sign,
// digits with an optional fraction (or a bare fraction), optional exponent.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var decimalNumberPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// BreakTimeRule requires <break> to carry a time duration.
type BreakTimeRule struct {
	lint.BaseRule
}

// NewBreakTimeRule creates a new break-time rule.
func NewBreakTimeRule() *BreakTimeRule {
	return &BreakTimeRule{
		BaseRule: lint.NewBaseRule(
			"SSML001",
			"break-time",
			"<break> must have a time attribute made of a number and a unit (ms or s)",
			"break",
			"time",
			[]string{"ms", "s"},
		),
	}
}

// Check validates the time attribute of a <break> element.
func (r *BreakTimeRule) Check(ctx *lint.RuleContext, elem *ssml.Element) *lint.Diagnostic {
	value, ok := elem.Attr(r.Attribute())
	if !ok {
		return lint.NewDiagnostic(r, elem, missingMessage(r)).AsMissing().Build()
	}

	if !ValidDuration(value, ctx.Values) {
		return lint.NewDiagnostic(r, elem,
			fmt.Sprintf("<break> tag has invalid time value '%s'", value)).
			WithValue(value).
			Build()
	}

	return nil
}

// ValidDuration reports whether value is a decimal number followed by one
// of units. The longest matching unit wins, so with the default units
// "5ms" is five milliseconds and never "5m" seconds. Unit matching is
// case-sensitive and the number must be finite.
func ValidDuration(value string, units []string) bool {
	byLength := slices.Clone(units)
	slices.SortStableFunc(byLength, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	for _, unit := range byLength {
		if unit == "" || !strings.HasSuffix(value, unit) {
			continue
		}

		number := strings.TrimSuffix(value, unit)
		if !decimalNumberPattern.MatchString(number) {
			return false
		}

		parsed, err := strconv.ParseFloat(number, 64)
		return err == nil && !math.IsInf(parsed, 0)
	}

	return false
}

// missingMessage renders the shared "missing attribute" message.
func missingMessage(rule lint.Rule) string {
	return fmt.Sprintf("<%s> tag is missing '%s' attribute", rule.Tag(), rule.Attribute())
}
