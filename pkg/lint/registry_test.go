package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/ssmlcheck/pkg/ssml"
)

// mockRule for testing.
type mockRule struct {
	id   string
	name string
	tag  string
}

func (m *mockRule) ID() string                                    { return m.id }
func (m *mockRule) Name() string                                  { return m.name }
func (m *mockRule) Description() string                           { return "mock" }
func (m *mockRule) Tag() string                                   { return m.tag }
func (m *mockRule) Attribute() string                             { return "attr" }
func (m *mockRule) DefaultEnabled() bool                          { return true }
func (m *mockRule) DefaultValues() []string                       { return nil }
func (m *mockRule) Check(*RuleContext, *ssml.Element) *Diagnostic { return nil }

func TestRegistry_GetByID(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "SSML001", name: "break-time", tag: "break"})

	got, ok := reg.GetByID("SSML001")
	assert.True(t, ok)
	assert.Equal(t, "break-time", got.Name())

	_, ok = reg.GetByID("break-time")
	assert.False(t, ok)
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "SSML001", name: "break-time", tag: "break"})
	reg.RegisterAlias("break", "SSML001")

	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"SSML001", "SSML001", true},
		{"break-time", "SSML001", true},
		{"break", "SSML001", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		id, _, ok := reg.Resolve(tt.key)
		assert.Equal(t, tt.wantOK, ok, "key: %s", tt.key)
		if tt.wantOK {
			assert.Equal(t, tt.wantID, id, "key: %s", tt.key)
		}
	}
}

func TestRegistry_Register_Replaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "SSML001", name: "old", tag: "break"})
	reg.Register(&mockRule{id: "SSML001", name: "new", tag: "break"})

	rules := reg.Rules()
	assert.Len(t, rules, 1)
	assert.Equal(t, "new", rules[0].Name())
}

func TestRegistry_Rules_Sorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "SSML003", name: "c"})
	reg.Register(&mockRule{id: "SSML001", name: "a"})
	reg.Register(&mockRule{id: "SSML002", name: "b"})

	rules := reg.Rules()
	assert.Len(t, rules, 3)
	assert.Equal(t, "SSML001", rules[0].ID())
	assert.Equal(t, "SSML002", rules[1].ID())
	assert.Equal(t, "SSML003", rules[2].ID())
}

func TestRegistry_RegisterAlias_UnknownRule(t *testing.T) {
	reg := NewRegistry()
	// Registering alias for unknown rule should not panic
	reg.RegisterAlias("some-alias", "UNKNOWN")

	_, _, ok := reg.Resolve("some-alias")
	assert.False(t, ok)
}
