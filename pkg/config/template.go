package config

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// templateHeader is the comment placed above the generated configuration.
const templateHeader = `ssmlcheck configuration.
Each rule accepts "enabled" and "values"; "values" replaces the
accepted attribute values (time units for break-time).`

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Values      []string
}

// GenerateTemplate renders a commented YAML configuration listing every
// given rule with its defaults. The output parses back with FromYAML.
func GenerateTemplate(rules []RuleInfo) ([]byte, error) {
	rulesNode := &yaml.Node{Kind: yaml.MappingNode}

	for _, info := range rules {
		key := scalarNode(info.ID)
		key.HeadComment = fmt.Sprintf("%s: %s", info.Name, info.Description)

		values := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range info.Values {
			values.Content = append(values.Content, scalarNode(v))
		}

		body := &yaml.Node{Kind: yaml.MappingNode}
		body.Content = append(body.Content,
			scalarNode("enabled"),
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(info.Enabled)},
			scalarNode("values"),
			values,
		)

		rulesNode.Content = append(rulesNode.Content, key, body)
	}

	rulesKey := scalarNode("rules")
	rulesKey.HeadComment = templateHeader
	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{rulesKey, rulesNode}}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
