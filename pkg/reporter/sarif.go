package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/ssmlcheck/pkg/lint"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// Malformed markup has no rule of its own; it is reported under this one.
const (
	wellFormedRuleID   = "SSML000"
	wellFormedRuleName = "well-formed"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a rule.
type SARIFRule struct {
	ID               string               `json:"id"`
	Name             string               `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText `json:"shortDescription,omitempty"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single diagnostic result.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a markup location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains the artifact and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the artifact URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// SARIFReporter formats results as SARIF.
type SARIFReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, in Input) (err error) {
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
		return fmt.Errorf("encode SARIF: %w", err)
	}

	return nil
}

func (r *SARIFReporter) buildOutput(in Input) *SARIFOutput {
	driver := SARIFDriver{
		Name:           "ssmlcheck",
		Version:        r.opts.ToolVersion,
		InformationURI: "https://github.com/yaklabco/ssmlcheck",
		Rules:          make([]SARIFRule, 0, len(r.opts.Rules)+1),
	}

	driver.Rules = append(driver.Rules, SARIFRule{
		ID:               wellFormedRuleID,
		Name:             wellFormedRuleName,
		ShortDescription: SARIFMultiformatText{Text: "markup must be well-formed XML"},
		DefaultConfig:    &SARIFRuleConfig{Level: "error"},
	})
	for _, rule := range r.opts.Rules {
		driver.Rules = append(driver.Rules, SARIFRule{
			ID:               rule.ID(),
			Name:             rule.Name(),
			ShortDescription: SARIFMultiformatText{Text: rule.Description()},
			DefaultConfig:    &SARIFRuleConfig{Level: "error"},
		})
	}

	output := &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []SARIFRun{{
			Tool:    SARIFTool{Driver: driver},
			Results: make([]SARIFResult, 0, 1),
		}},
	}

	diag := in.Result.Diagnostic
	if diag == nil {
		return output
	}

	ruleID := diag.RuleID
	if diag.Kind == lint.KindMalformed {
		ruleID = wellFormedRuleID
	}

	uri := in.Name
	if uri == "" {
		uri = "stdin"
	}

	output.Runs[0].Results = append(output.Runs[0].Results, SARIFResult{
		RuleID:  ruleID,
		Level:   "error",
		Message: SARIFMessage{Text: diag.Message},
		Locations: []SARIFLocation{{
			PhysicalLocation: SARIFPhysicalLocation{
				ArtifactLocation: SARIFArtifactLocation{URI: uri},
				Region: SARIFRegion{
					StartLine:   max(diag.Line, 1),
					StartColumn: diag.Column,
				},
			},
		}},
	})

	return output
}
