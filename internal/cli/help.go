package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/ssmlcheck/internal/ui/pretty"
)

// Command groups shown in help output.
const (
	groupValidate = "validate"
	groupRules    = "rules"
)

// rootExample is the Examples section of the root command.
const rootExample = `  # Check the built-in Hamlet sample
  ssmlcheck

  # Report the sample as SARIF for code scanning
  ssmlcheck sample --format sarif

  # Show which time, level and interpret-as values each tag accepts
  ssmlcheck rules

  # Print the default rule configuration
  ssmlcheck config`

// helpStyles holds the styles for each part of the help text.
type helpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style
	Example    lipgloss.Style
	Dim        lipgloss.Style
}

func newHelpStyles(colorEnabled bool) *helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &helpStyles{
			Command:    plain,
			Heading:    plain,
			Subcommand: plain,
			Flag:       plain,
			Example:    plain,
			Dim:        plain,
		}
	}

	return &helpStyles{
		Command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Example:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}
{{- end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]
{{- end }}

{{- if .HasExample }}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end }}

{{- if .HasAvailableSubCommands }}{{ $cmds := .Commands }}
{{- range $group := .Groups }}

{{ heading $group.Title }}
{{- range $cmds }}{{ if and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")) }}
  {{ subcommand . }} {{ .Short }}
{{- end }}{{ end }}
{{- end }}
{{- if not .AllChildCommandsHaveGroup }}

{{ heading "Other Commands:" }}
{{- range $cmds }}{{ if and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")) }}
  {{ subcommand . }} {{ .Short }}
{{- end }}{{ end }}
{{- end }}
{{- end }}

{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end }}

{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end }}

{{- if .HasAvailableSubCommands }}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end }}
`

const helpTemplate = `{{ with (or .Long .Short) }}{{ trim . }}

{{ end }}` + usageTemplate

// helpRenderer renders help and usage text with the styles chosen for
// one output stream.
type helpRenderer struct {
	styles *helpStyles
}

func (h *helpRenderer) funcs() template.FuncMap {
	return template.FuncMap{
		"command": h.styles.Command.Render,
		"heading": h.styles.Heading.Render,
		"example": h.styles.Example.Render,
		"subcommand": func(cmd *cobra.Command) string {
			return h.styles.Subcommand.Render(cmd.Name()) + pad(cmd.Name(), cmd.NamePadding())
		},
		"flags": h.flagUsages,
		"trim":  trimTrailingWhitespaces,
	}
}

func (h *helpRenderer) render(out io.Writer, text string, cmd *cobra.Command) error {
	tmpl, err := template.New("help").Funcs(h.funcs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parse help template: %w", err)
	}
	if err := tmpl.Execute(out, cmd); err != nil {
		return fmt.Errorf("render help: %w", err)
	}
	return nil
}

// flagUsages lists the visible flags of flags, one per line, with names
// aligned and defaults dimmed.
func (h *helpRenderer) flagUsages(flags *pflag.FlagSet) string {
	type flagLine struct {
		name  string
		usage string
	}

	var (
		lines []flagLine
		width int
	)
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		name := "    --" + flag.Name
		if flag.Shorthand != "" {
			name = "-" + flag.Shorthand + ", --" + flag.Name
		}
		if typ := flag.Value.Type(); typ != "bool" {
			name += " " + typ
		}

		usage := flag.Usage
		if flag.Value.Type() != "bool" && flag.DefValue != "" {
			usage += " " + h.styles.Dim.Render(fmt.Sprintf("(default %q)", flag.DefValue))
		}

		lines = append(lines, flagLine{name: name, usage: usage})
		width = max(width, len(name))
	})

	var out strings.Builder
	for i, line := range lines {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString("  ")
		out.WriteString(h.styles.Flag.Render(line.name))
		out.WriteString(pad(line.name, width))
		out.WriteString("   ")
		out.WriteString(line.usage)
	}
	return out.String()
}

// applyHelp installs styled help on cmd and its subcommands. Color is
// decided when help is shown, after colorMode has been parsed.
func applyHelp(cmd *cobra.Command, colorMode *string) {
	render := func(out io.Writer, text string, command *cobra.Command) error {
		renderer := &helpRenderer{styles: newHelpStyles(pretty.IsColorEnabled(*colorMode, out))}
		return renderer.render(out, text, command)
	}

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return render(command.OutOrStderr(), usageTemplate, command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(command.OutOrStdout(), helpTemplate, command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// pad returns the spaces needed to widen str to width.
func pad(str string, width int) string {
	if len(str) >= width {
		return ""
	}
	return strings.Repeat(" ", width-len(str))
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
