package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ssmlcheck/internal/logging"
	"github.com/yaklabco/ssmlcheck/internal/ui/pretty"
	"github.com/yaklabco/ssmlcheck/pkg/lint"
	"github.com/yaklabco/ssmlcheck/pkg/reporter"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tag         string   `json:"tag"`
	Attribute   string   `json:"attribute"`
	Values      []string `json:"values"`
	Enabled     bool     `json:"enabled"`
}

func newRulesCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		GroupID: groupRules,
		Short:   "List the tag rules",
		Long: `List every tag rule with its ID, name, element, attribute and the
values it accepts by default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()
			out := cmd.OutOrStdout()

			logging.FromContext(cmd.Context()).Debug("listing rules", logging.FieldRules, len(rules))

			format, err := reporter.ParseFormat(flags.format)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
			}

			switch format {
			case reporter.FormatJSON:
				return outputRulesJSON(out, rules)
			case reporter.FormatText:
				return outputRulesTable(out, rules, flags.color)
			default:
				return fmt.Errorf("%w: rules does not support format %q", ErrInvalidUsage, format)
			}
		},
	}

	return cmd
}

// outputRulesTable renders rules as a table sized to the terminal.
func outputRulesTable(out io.Writer, rules []lint.Rule, color string) error {
	if len(rules) == 0 {
		logging.NewInteractive(out).Info("no rules registered")
		return nil
	}

	rows := make([]pretty.RuleRow, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, pretty.RuleRow{
			ID:        rule.ID(),
			Name:      rule.Name(),
			Tag:       rule.Tag(),
			Attribute: rule.Attribute(),
			Values:    rule.DefaultValues(),
			Enabled:   rule.DefaultEnabled(),
		})
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(color, out))
	table := pretty.NewTableFormatter(styles, pretty.TerminalWidth(out))

	if _, err := fmt.Fprint(out, table.FormatRules(rows)); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	return nil
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(out io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Tag:         rule.Tag(),
			Attribute:   rule.Attribute(),
			Values:      rule.DefaultValues(),
			Enabled:     rule.DefaultEnabled(),
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
