// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldName   = "name"
	FieldFormat = "format"

	// Validation fields.
	FieldValid  = "valid"
	FieldReason = "reason"
	FieldRule   = "rule"
	FieldRules  = "rules"
	FieldTag    = "tag"
	FieldLine   = "line"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
