package pretty

import "github.com/yaklabco/ssmlcheck/pkg/lint"

// FormatOutcome renders the one-line verdict for a validation result.
func (s *Styles) FormatOutcome(result lint.Result) string {
	if result.IsValid() {
		return s.Success.Render("Valid SSML") + "\n"
	}
	return s.Failure.Render("Invalid SSML:") + " " + s.Message.Render(result.Reason()) + "\n"
}
