package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // ID, NAME, TAG, ATTRIBUTE, VALUES
	minIDWidth       = 7
	minNameWidth     = 12
	minTagWidth      = 8
	minAttrWidth     = 12
	minValuesWidth   = 20
	heavySeparator   = "="
)

// RuleRow represents a single row in the rules table.
type RuleRow struct {
	ID        string
	Name      string
	Tag       string
	Attribute string
	Values    []string
	Enabled   bool
}

// TableFormatter formats the rule listing as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	id     int
	name   int
	tag    int
	attr   int
	values int
}

// FormatRules formats rule rows as a table. Disabled rules are dimmed.
func (t *TableFormatter) FormatRules(rows []RuleRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s  %-*s",
		widths.id, "ID",
		widths.name, "NAME",
		widths.tag, "TAG",
		widths.attr, "ATTRIBUTE",
		widths.values, "VALUES",
	)
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")
	builder.WriteString(t.formatSeparator(widths) + "\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths) + "\n")
	}

	builder.WriteString(t.formatSeparator(widths) + "\n")

	return builder.String()
}

// calculateColumnWidths sizes columns to content, shrinking VALUES to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(rows []RuleRow) columnWidths {
	widths := columnWidths{
		id:     minIDWidth,
		name:   minNameWidth,
		tag:    minTagWidth,
		attr:   minAttrWidth,
		values: minValuesWidth,
	}

	for _, row := range rows {
		widths.id = max(widths.id, len(row.ID))
		widths.name = max(widths.name, len(row.Name))
		widths.tag = max(widths.tag, len(row.Tag)+len("<>"))
		widths.attr = max(widths.attr, len(row.Attribute))
		widths.values = max(widths.values, len(joinValues(row.Values)))
	}

	if total := calculateTotalWidth(widths); total > t.termWidth {
		widths.values = max(minValuesWidth, widths.values-(total-t.termWidth))
	}

	return widths
}

func calculateTotalWidth(widths columnWidths) int {
	return widths.id + widths.name + widths.tag + widths.attr + widths.values + tablePadding*tableColumnCount
}

func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, calculateTotalWidth(widths)))
}

func (t *TableFormatter) formatRow(row RuleRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s  %s",
		widths.id, row.ID,
		widths.name, row.Name,
		widths.tag, "<"+row.Tag+">",
		widths.attr, row.Attribute,
		truncateString(joinValues(row.Values), widths.values),
	)

	style := lipgloss.NewStyle()
	if !row.Enabled {
		style = t.styles.TableDisabled
	}
	return style.Render(content)
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
