package ssml_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ssmlcheck/pkg/ssml"
)

func TestParse_BuildsTree(t *testing.T) {
	t.Parallel()

	doc, err := ssml.Parse(`<speak><emphasis level="strong">To be</emphasis><break time="220ms"/></speak>`)
	require.NoError(t, err)
	require.NotNil(t, doc.Root)

	assert.Equal(t, "speak", doc.Root.Name)
	assert.Nil(t, doc.Root.Parent)
	require.Len(t, doc.Root.Children, 2)

	emphasis := doc.Root.Children[0]
	assert.Equal(t, "emphasis", emphasis.Name)
	assert.Same(t, doc.Root, emphasis.Parent)
	level, ok := emphasis.Attr("level")
	assert.True(t, ok)
	assert.Equal(t, "strong", level)

	brk := doc.Root.Children[1]
	assert.Equal(t, "break", brk.Name)
	assert.Equal(t, map[string]string{"time": "220ms"}, brk.Attrs)
	assert.Equal(t, 3, countElements(doc.Root))
}

func TestParse_Positions(t *testing.T) {
	t.Parallel()

	doc, err := ssml.Parse("<speak>\n  <break time=\"1s\"/>\n</speak>")
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Root.Line)
	assert.Equal(t, 1, doc.Root.Column)

	brk := doc.Root.Children[0]
	assert.Equal(t, 2, brk.Line)
	assert.Equal(t, 3, brk.Column)
}

func TestParse_Namespaces(t *testing.T) {
	t.Parallel()

	input := `<speak xmlns="http://www.w3.org/2001/10/synthesis" xmlns:x="urn:other" xml:lang="en-US">` +
		`<break time="1s"/><x:break x:time="2s"/></speak>`

	doc, err := ssml.Parse(input)
	require.NoError(t, err)

	assert.Equal(t, ssml.Namespace, doc.Root.Space)
	assert.True(t, doc.Root.IsSSML())
	assert.NotContains(t, doc.Root.Attrs, "xmlns")
	assert.NotContains(t, doc.Root.Attrs, "x")
	assert.Contains(t, doc.Root.Attrs, "{http://www.w3.org/XML/1998/namespace}lang")

	require.Len(t, doc.Root.Children, 2)
	assert.True(t, doc.Root.Children[0].IsSSML())

	foreign := doc.Root.Children[1]
	assert.Equal(t, "break", foreign.Name)
	assert.False(t, foreign.IsSSML())
	assert.Equal(t, "{urn:other}break", foreign.Tag())
	_, ok := foreign.Attr("time")
	assert.False(t, ok)
	assert.Equal(t, "2s", foreign.Attrs["{urn:other}time"])
}

func TestParse_PredefinedEntities(t *testing.T) {
	t.Parallel()

	doc, err := ssml.Parse(`<speak><say-as interpret-as="&#100;ate">a &amp; b</say-as></speak>`)
	require.NoError(t, err)
	assert.Equal(t, "date", doc.Root.Children[0].Attrs["interpret-as"])
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"mismatched tags", `<speak><break time="1s"></speak>`, "closed by"},
		{"empty input", ``, "document is empty"},
		{"whitespace only", "  \n ", "document is empty"},
		{"unclosed root", `<speak>`, "unexpected EOF"},
		{"two roots", `<speak/><speak/>`, "extra content"},
		{"text after root", `<speak/>trailing`, "extra content"},
		{"text before root", `leading<speak/>`, "content before the root element"},
		{"undeclared entity", `<speak>&custom;</speak>`, "entity"},
		{"duplicate attribute", `<speak><break time="1s" time="2s"/></speak>`, "attribute time redefined"},
		{"not xml", `hello world`, "content before the root element"},
		{"undeclared element prefix", `<speak><x:break/></speak>`, "namespace prefix x on break is not defined"},
		{
			"undeclared attribute prefix",
			`<speak><break x:time="1s"/></speak>`,
			"namespace prefix x for time on break is not defined",
		},
		{
			"prefix out of scope",
			`<speak><p xmlns:x="urn:other"><x:s/></p><x:break/></speak>`,
			"namespace prefix x on break is not defined",
		},
		{
			"external entity",
			`<!DOCTYPE speak [<!ENTITY xxe SYSTEM "file:///etc/passwd">]><speak>&xxe;</speak>`,
			"entity",
		},
		{
			"foreign encoding",
			`<?xml version="1.0" encoding="ISO-8859-1"?><speak/>`,
			"encoding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ssml.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, doc)

			var syntaxErr *ssml.SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "expected *ssml.SyntaxError, got %T", err)
			assert.Contains(t, err.Error(), "syntax error")
			assert.Contains(t, syntaxErr.Msg, tt.wantMsg)
			assert.Positive(t, syntaxErr.Line)
		})
	}
}

func TestParse_PrefixDeclaredOnSameElement(t *testing.T) {
	t.Parallel()

	doc, err := ssml.Parse(`<speak><x:break xmlns:x="urn:other" x:time="1s"/></speak>`)
	require.NoError(t, err)

	brk := doc.Root.Children[0]
	assert.Equal(t, "urn:other", brk.Space)
	assert.Equal(t, "1s", brk.Attrs["{urn:other}time"])
}

func TestParse_CommentsAndDoctypeAllowed(t *testing.T) {
	t.Parallel()

	input := "<?xml version=\"1.0\"?>\n<!-- intro -->\n<!DOCTYPE speak>\n<speak>hi</speak>\n<!-- outro -->\n"

	doc, err := ssml.Parse(input)
	require.NoError(t, err)
	assert.Equal(t, "speak", doc.Root.Name)
}

func TestParse_DeepNesting(t *testing.T) {
	t.Parallel()

	const depth = 200
	input := strings.Repeat("<p>", depth) + strings.Repeat("</p>", depth)

	doc, err := ssml.Parse(input)
	require.NoError(t, err)
	assert.Equal(t, depth, countElements(doc.Root))
}
