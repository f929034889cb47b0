package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/ssmlcheck/pkg/config"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Name       string          `json:"name,omitempty"`
	Valid      bool            `json:"valid"`
	Reason     string          `json:"reason,omitempty"`
	Diagnostic *JSONDiagnostic `json:"diagnostic,omitempty"`
}

// JSONDiagnostic represents the diagnostic of an invalid document.
type JSONDiagnostic struct {
	Kind      string `json:"kind"`
	Rule      string `json:"rule,omitempty"`
	RuleID    string `json:"ruleId,omitempty"`
	RuleName  string `json:"ruleName,omitempty"`
	Message   string `json:"message"`
	Tag       string `json:"tag,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Value     string `json:"value,omitempty"`
	Missing   bool   `json:"missing,omitempty"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, in Input) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.buildOutput(in)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func (r *JSONReporter) buildOutput(in Input) *JSONOutput {
	output := &JSONOutput{
		Name:   in.Name,
		Valid:  in.Result.IsValid(),
		Reason: in.Result.Reason(),
	}

	diag := in.Result.Diagnostic
	if diag == nil {
		return output
	}

	output.Diagnostic = &JSONDiagnostic{
		Kind:      string(diag.Kind),
		RuleID:    diag.RuleID,
		RuleName:  diag.RuleName,
		Message:   diag.Message,
		Tag:       diag.Tag,
		Attribute: diag.Attribute,
		Value:     diag.Value,
		Missing:   diag.Missing,
		Line:      diag.Line,
		Column:    diag.Column,
	}
	if diag.RuleID != "" {
		output.Diagnostic.Rule = config.FormatRuleID(r.opts.RuleFormat, diag.RuleID, diag.RuleName)
	}

	return output
}
