package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AddBinding appends a binding to the config file at configPath, keeping
// existing structure and comments. When the file has no bindings section
// the defaults are written first so adding a key doesn't silently drop
// them. Adding an identical binding twice does nothing.
func AddBinding(configPath string, b BindingConfig) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	bindingsNode := findMapValue(docNode, "bindings")
	if bindingsNode == nil {
		bindingsNode = &yaml.Node{
			Kind: yaml.SequenceNode,
			Tag:  "!!seq",
		}
		for _, d := range DefaultBindings() {
			bindingsNode.Content = append(bindingsNode.Content, bindingNode(d))
		}
		docNode.Content = append(docNode.Content, scalarNode("bindings"), bindingsNode)
	}
	if bindingsNode.Kind != yaml.SequenceNode {
		return fmt.Errorf("'bindings' must be a list")
	}

	for _, item := range bindingsNode.Content {
		var existing BindingConfig
		if err := item.Decode(&existing); err == nil && existing == b {
			return nil
		}
	}

	bindingsNode.Content = append(bindingsNode.Content, bindingNode(b))

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func bindingNode(b BindingConfig) *yaml.Node {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			scalarNode("key"), quotedNode(b.Key),
			scalarNode("action"), scalarNode(b.Action),
		},
	}
	if b.Line != "" {
		node.Content = append(node.Content, scalarNode("line"), quotedNode(b.Line))
	}
	return node
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// quotedNode keeps descriptors like ":" or "?" from being read as YAML syntax.
func quotedNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle}
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
