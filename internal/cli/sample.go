package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ssmlcheck/internal/logging"
	"github.com/yaklabco/ssmlcheck/pkg/config"
	"github.com/yaklabco/ssmlcheck/pkg/lint"
	"github.com/yaklabco/ssmlcheck/pkg/reporter"
)

const sampleName = "sample"

// hamletSample is the built-in markup checked by the sample command.
const hamletSample = `<speak><emphasis level="strong">To be</emphasis><break time="220ms"/> or not to be, ` +
	`<break time="1000ms"/><emphasis level="moderate">that</emphasis>is the question.<break time="400ms"/> ` +
	`Whether ‘tis nobler in the mind to suffer The slings and arrows of outrageous fortune,` +
	`<break time="200ms"/> Or to take arms against a sea of troubles  And by opposing end them.</speak>`

func newSampleCommand(flags *globalFlags, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:     "sample",
		GroupID: groupValidate,
		Short:   "Validate the built-in sample markup",
		Long: `Validate the built-in Hamlet sample and print the outcome.

The outcome line ("Valid SSML" or "Invalid SSML: <reason>") is followed by
the boolean result. The exit code is 0 when the sample is valid and 1
otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSample(cmd, flags, info, sampleName, hamletSample)
		},
	}
}

// runSample validates source and reports the outcome to the command output.
func runSample(cmd *cobra.Command, flags *globalFlags, info BuildInfo, name, source string) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	ruleFormat := config.RuleFormat(flags.ruleFormat)
	if !ruleFormat.IsValid() {
		return fmt.Errorf("%w: unknown rule format %q; valid formats: name, id, combined",
			ErrInvalidUsage, flags.ruleFormat)
	}

	logger := logging.FromContext(cmd.Context())

	validator, err := lint.NewValidator(lint.DefaultRegistry, nil, lint.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build validator: %w", err)
	}

	result := validator.Validate(source)
	logger.Debug("markup checked",
		logging.FieldName, name,
		logging.FieldValid, result.IsValid(),
		logging.FieldFormat, format,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       flags.color,
		ShowContext: true,
		RuleFormat:  ruleFormat,
		ToolVersion: info.Version,
		Rules:       lint.DefaultRegistry.Rules(),
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(cmd.Context(), reporter.Input{Name: name, Source: source, Result: result}); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if format == reporter.FormatText {
		fmt.Fprintln(cmd.OutOrStdout(), result.IsValid())
	}

	if !result.IsValid() {
		return ErrInvalidMarkup
	}

	return nil
}
