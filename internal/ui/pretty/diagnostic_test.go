package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/ssmlcheck/internal/ui/pretty"
	"github.com/yaklabco/ssmlcheck/pkg/config"
	"github.com/yaklabco/ssmlcheck/pkg/lint"
)

func TestFormatDiagnostic_RuleViolation(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := &lint.Diagnostic{
		Kind:     lint.KindRuleViolation,
		RuleID:   "SSML002",
		RuleName: "emphasis-level",
		Message:  "<emphasis> tag has invalid level value 'shout'",
		Line:     2,
		Column:   3,
	}
	source := "<speak>\n  <emphasis level=\"shout\">hi</emphasis>\n</speak>"

	result := styles.FormatDiagnostic(diag, source, config.RuleFormatCombined)

	assert.Contains(t, result, "2:3")
	assert.Contains(t, result, "rule-violation")
	assert.Contains(t, result, "invalid level value 'shout'")
	assert.Contains(t, result, "(SSML002/emphasis-level)")
	assert.Contains(t, result, `<emphasis level="shout">`)

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat(" ", 8+2)+"^", lines[2])
}

func TestFormatDiagnostic_Malformed(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := &lint.Diagnostic{
		Kind:    lint.KindMalformed,
		Message: "XML syntax error on line 1: document is empty",
		Line:    1,
	}

	result := styles.FormatDiagnostic(diag, "", config.RuleFormatName)

	assert.Contains(t, result, "malformed")
	assert.Contains(t, result, "document is empty")
	assert.NotContains(t, result, "(")
	assert.NotContains(t, result, "^")
}

func TestFormatDiagnostic_Nil(t *testing.T) {
	assert.Empty(t, pretty.NewStyles(false).FormatDiagnostic(nil, "", config.RuleFormatName))
}

func TestFormatSourceContext_ColumnOutOfRange(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("<break/>", 40)
	assert.Contains(t, result, "<break/>")
	assert.NotContains(t, result, "^")
}

func TestSourceLine(t *testing.T) {
	source := "one\r\ntwo\nthree"

	assert.Equal(t, "one", pretty.SourceLine(source, 1))
	assert.Equal(t, "two", pretty.SourceLine(source, 2))
	assert.Equal(t, "three", pretty.SourceLine(source, 3))
	assert.Empty(t, pretty.SourceLine(source, 4))
	assert.Empty(t, pretty.SourceLine(source, 0))
	assert.Empty(t, pretty.SourceLine("", 1))
}

func TestFormatSourceContext_MultiByteBeforeCaret(t *testing.T) {
	styles := pretty.NewStyles(false)

	// "‘" is three bytes, so <break/> starts at byte column 15 but at
	// display column 13.
	line := "<s>Whether ‘<break/></s>"
	column := strings.Index(line, "<break/>") + 1

	result := styles.FormatSourceContext(line, column)

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat(" ", 8+12)+"^", lines[1])
}
