package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ssmlcheck/pkg/config"
	"github.com/yaklabco/ssmlcheck/pkg/lint"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		GroupID: groupRules,
		Short:   "Print the default configuration",
		Long: `Print the default rule configuration as YAML.

Each rule is listed under its ID with its default enabled state and the
values it accepts. The output is a starting point for embedding a custom
configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := defaultConfigYAML(lint.DefaultRegistry)
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			return nil
		},
	}
}

// defaultConfigYAML renders the default configuration for every rule in registry.
func defaultConfigYAML(registry *lint.Registry) ([]byte, error) {
	rules := registry.Rules()

	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
			Values:      rule.DefaultValues(),
		})
	}

	data, err := config.GenerateTemplate(infos)
	if err != nil {
		return nil, fmt.Errorf("generate config template: %w", err)
	}
	return data, nil
}
