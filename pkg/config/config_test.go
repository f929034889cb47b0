package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ssmlcheck/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	require.NotNil(t, cfg.Rules)
	assert.Empty(t, cfg.Rules)
	assert.Equal(t, config.RuleFormatName, cfg.RuleFormat)
	assert.Nil(t, cfg.Rule("SSML001"))
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
rules:
  SSML001:
    values: [ms, s]
  emphasis-level:
    enabled: false
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	require.Contains(t, cfg.Rules, "SSML001")
	assert.Equal(t, []string{"ms", "s"}, cfg.Rules["SSML001"].Values)
	assert.Nil(t, cfg.Rules["SSML001"].Enabled)

	rc := cfg.Rule("emphasis-level")
	require.NotNil(t, rc)
	require.NotNil(t, rc.Enabled)
	assert.False(t, *rc.Enabled)
}

func TestFromYAML_Empty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   \n", "# only a comment\n"} {
		cfg, err := config.FromYAML([]byte(input))
		require.NoError(t, err, "input %q", input)
		assert.NotNil(t, cfg.Rules)
		assert.Empty(t, cfg.Rules)
	}
}

func TestFromYAML_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"unknown top-level key", "severity: error\n"},
		{"unknown rule key", "rules:\n  SSML001:\n    severity: error\n"},
		{"malformed", "rules: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.FromYAML([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse yaml")
		})
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies rules", func(t *testing.T) {
		t.Parallel()

		enabled := true
		original := &config.Config{
			Rules: map[string]config.RuleConfig{
				"SSML002": {Enabled: &enabled, Values: []string{"strong"}},
			},
			RuleFormat: config.RuleFormatID,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		*original.Rules["SSML002"].Enabled = false
		original.Rules["SSML002"].Values[0] = "none"

		assert.True(t, *clone.Rules["SSML002"].Enabled)
		assert.Equal(t, []string{"strong"}, clone.Rules["SSML002"].Values)
	})
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	disabled := false
	cfg := config.NewConfig()
	cfg.Rules["SSML003"] = config.RuleConfig{Enabled: &disabled, Values: []string{"date", "time"}}

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "values: [date, time]")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Rules, parsed.Rules)
}

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format config.RuleFormat
		name   string
		want   string
	}{
		{config.RuleFormatID, "break-time", "SSML001"},
		{config.RuleFormatName, "break-time", "break-time"},
		{config.RuleFormatCombined, "break-time", "SSML001/break-time"},
		{config.RuleFormat("bogus"), "break-time", "break-time"},
		{config.RuleFormatName, "", "SSML001"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, config.FormatRuleID(tt.format, "SSML001", tt.name),
			"format %q name %q", tt.format, tt.name)
	}

	assert.True(t, config.RuleFormatCombined.IsValid())
	assert.False(t, config.RuleFormat("").IsValid())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	data, err := config.GenerateTemplate([]config.RuleInfo{
		{
			ID:          "SSML002",
			Name:        "emphasis-level",
			Description: "emphasis must carry a supported level",
			Enabled:     true,
			Values:      []string{"strong", "moderate", "reduced", "none"},
		},
	})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# ssmlcheck configuration.")
	assert.Contains(t, out, "# emphasis-level: emphasis must carry a supported level")
	assert.Contains(t, out, "values: [strong, moderate, reduced, none]")

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	require.Contains(t, cfg.Rules, "SSML002")
	require.NotNil(t, cfg.Rules["SSML002"].Enabled)
	assert.True(t, *cfg.Rules["SSML002"].Enabled)
	assert.Equal(t, []string{"strong", "moderate", "reduced", "none"}, cfg.Rules["SSML002"].Values)
}
