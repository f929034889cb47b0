// Package reporter renders validation results for humans and tools.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/ssmlcheck/pkg/lint"
)

// Input is one checked piece of markup.
type Input struct {
	// Name identifies the markup in output (e.g. "sample").
	Name string

	// Source is the markup text, used for source context.
	Source string

	// Result is the validation outcome.
	Result lint.Result
}

// Reporter formats and writes validation results.
type Reporter interface {
	// Report writes formatted output for the given input.
	Report(ctx context.Context, in Input) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.RuleFormat == "" {
		opts.RuleFormat = defaults.RuleFormat
	}
	if opts.ToolVersion == "" {
		opts.ToolVersion = defaults.ToolVersion
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
