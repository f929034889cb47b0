package lint

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/ssmlcheck/internal/logging"
	"github.com/yaklabco/ssmlcheck/pkg/config"
	"github.com/yaklabco/ssmlcheck/pkg/ssml"
)

// boundRule is a resolved rule together with its shared context.
type boundRule struct {
	rule Rule
	ctx  *RuleContext
}

// Validator runs the validation pass over SSML documents.
//
// A Validator is immutable once built and safe for concurrent use; every
// call parses its own Document.
type Validator struct {
	byTag  map[string][]boundRule
	logger *log.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// ErrNoRules is returned by NewValidator when the registry holds no rules.
// Rules register themselves when package rules is imported.
var ErrNoRules = errors.New("no rules registered")

// NewValidator resolves the enabled rules of registry against cfg.
// A nil registry means DefaultRegistry; a nil cfg means defaults.
// The configuration is copied, so later changes to cfg have no effect.
func NewValidator(registry *Registry, cfg *config.Config, opts ...Option) (*Validator, error) {
	if registry == nil {
		registry = DefaultRegistry
	}
	if len(registry.Rules()) == 0 {
		return nil, ErrNoRules
	}
	if cfg == nil {
		cfg = config.NewConfig()
	} else {
		cfg = cfg.Clone()
	}

	validator := &Validator{
		byTag:  make(map[string][]boundRule),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(validator)
	}

	resolved, err := ResolveRules(registry, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve rules: %w", err)
	}

	for _, rr := range resolved {
		ruleCtx := &RuleContext{
			Config:     cfg,
			RuleConfig: rr.Config,
			Values:     rr.Values,
			Logger:     validator.logger,
		}
		tag := rr.Rule.Tag()
		validator.byTag[tag] = append(validator.byTag[tag], boundRule{rule: rr.Rule, ctx: ruleCtx})
	}

	validator.logger.Debug("validator ready", logging.FieldRules, len(resolved))

	return validator, nil
}

// Validate parses input and checks every recognized element.
// Parse failures and rule violations are both reported through the Result;
// the first problem found ends the pass.
func (v *Validator) Validate(input string) Result {
	doc, err := ssml.Parse(input)
	if err != nil {
		v.logger.Debug("markup rejected by parser", logging.FieldError, err)
		return Result{Diagnostic: newMalformedDiagnostic(err)}
	}

	return v.ValidateDocument(doc)
}

// ValidateDocument checks an already parsed document. The document is not
// modified.
func (v *Validator) ValidateDocument(doc *ssml.Document) Result {
	if doc == nil || doc.Root == nil {
		return Result{Diagnostic: &Diagnostic{Kind: KindMalformed, Message: "document is empty"}}
	}

	err := ssml.Walk(doc.Root, func(elem *ssml.Element) error {
		if !elem.IsSSML() {
			return nil
		}

		for _, bound := range v.byTag[elem.Name] {
			v.logger.Debug("checking element",
				logging.FieldRule, bound.rule.ID(),
				logging.FieldTag, elem.Name,
				logging.FieldLine, elem.Line,
			)

			if diag := bound.rule.Check(bound.ctx, elem); diag != nil {
				return diag
			}
		}

		return nil
	})

	var diag *Diagnostic
	if errors.As(err, &diag) {
		v.logger.Debug("rule violation",
			logging.FieldRule, diag.RuleID,
			logging.FieldLine, diag.Line,
			logging.FieldReason, diag.Message,
		)
		return Result{Diagnostic: diag}
	}

	return Result{}
}
