package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/ssmlcheck/pkg/config"
	"github.com/yaklabco/ssmlcheck/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// When source is non-empty the offending line is shown with a caret.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, source string, ruleFormat config.RuleFormat) string {
	if diag == nil {
		return ""
	}

	var builder strings.Builder

	location := s.Location.Render(fmt.Sprintf("%d:%d", diag.Line, diag.Column))

	// Main line: location  kind  message  (rule-id)
	fmt.Fprintf(&builder, "  %s  %s  %s", location, s.Error.Render(string(diag.Kind)), s.Message.Render(diag.Message))
	if diag.RuleID != "" {
		ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)
		builder.WriteString("  " + s.RuleID.Render("("+ruleIdentifier+")"))
	}
	builder.WriteString("\n")

	if line := SourceLine(source, diag.Line); line != "" {
		builder.WriteString(s.FormatSourceContext(line, diag.Column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker.
// column is a 1-based byte offset; the caret is placed by display width
// so multi-byte text before it does not shift it.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 && column <= len(line)+1 {
		padding := indent + strings.Repeat(" ", lipgloss.Width(line[:column-1]))
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// SourceLine returns the 1-based line of source, or "" when out of range.
func SourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}
