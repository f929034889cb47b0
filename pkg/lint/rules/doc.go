// Package rules provides the built-in tag rules for ssmlcheck.
//
// Each rule checks one SSML element for one required attribute:
//
//   - SSML001: break-time - <break> needs a time such as "220ms" or "0.4s"
//
//   - SSML002: emphasis-level - <emphasis> needs a supported level
//
//   - SSML003: say-as-interpret-as - <say-as> needs a supported interpret-as
//
// Importing this package registers the rules with lint.DefaultRegistry.
// Validate checks markup against all three with their default settings.
package rules
