package rules

import (
	"sync"

	"github.com/yaklabco/ssmlcheck/pkg/lint"
)

//nolint:gochecknoglobals // Lazily built validator over the built-in rules
var defaultValidator = sync.OnceValues(func() (*lint.Validator, error) {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	return lint.NewValidator(registry, nil)
})

// Validate checks input against the built-in rules with their default
// settings. It is safe for concurrent use.
func Validate(input string) lint.Result {
	validator, err := defaultValidator()
	if err != nil {
		return lint.Result{Diagnostic: &lint.Diagnostic{Kind: lint.KindMalformed, Message: err.Error()}}
	}
	return validator.Validate(input)
}
