package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/ssmlcheck/internal/ui/pretty"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, in Input) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if _, err := fmt.Fprint(r.bw, r.styles.FormatOutcome(in.Result)); err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}

	if in.Result.IsValid() || !r.opts.ShowContext {
		return nil
	}

	if in.Name != "" {
		fmt.Fprintln(r.bw, r.styles.Bold.Render(in.Name))
	}
	fmt.Fprint(r.bw, r.styles.FormatDiagnostic(in.Result.Diagnostic, in.Source, r.opts.RuleFormat))

	return nil
}
