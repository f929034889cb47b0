// Package cli provides the Cobra command structure for ssmlcheck.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/ssmlcheck/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	debug      bool
	color      string
	format     string
	ruleFormat string
}

// NewRootCommand creates the root ssmlcheck command with all subcommands.
// Run without a subcommand it validates the built-in sample.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "ssmlcheck",
		Short: "Check SSML markup against Cloud Text-to-Speech tag rules",
		Long: `ssmlcheck validates SSML markup destined for Google Cloud Text-to-Speech.

The markup must be well-formed XML, and every <break>, <emphasis> and
<say-as> element must carry a supported time, level or interpret-as
value. Entity resolution is disabled while parsing, so nothing outside
the markup is ever read.

Run without a subcommand, ssmlcheck validates its built-in sample.`,
		Example: rootExample,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSample(cmd, flags, info, sampleName, hamletSample)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "text",
		"output format: text, json, sarif")
	rootCmd.PersistentFlags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")

	// Add subcommands.
	rootCmd.AddGroup(
		&cobra.Group{ID: groupValidate, Title: "Validation Commands:"},
		&cobra.Group{ID: groupRules, Title: "Rule Commands:"},
	)
	rootCmd.AddCommand(newSampleCommand(flags, info))
	rootCmd.AddCommand(newRulesCommand(flags))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	applyHelp(rootCmd, &flags.color)

	return rootCmd
}
