package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/uikit/internal/errors"
	"gopkg.in/yaml.v3"
)

// fileHeader is written above freshly generated config files.
const fileHeader = "# uikit configuration. See 'uikit init --help'.\n"

// Save writes cfg to path as YAML, replacing any existing file.
func Save(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	var buf strings.Builder
	buf.WriteString(fileHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is unexpected - please report it.")
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}
	return nil
}

// SetPreset adds or replaces a named mask in the config file at path.
// It preserves the existing YAML structure and comments.
func SetPreset(path, name, pattern string) error {
	name = strings.ToLower(name)
	if err := ValidatePreset(name, pattern); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Pick a single-word name and a mask containing at least one 9.")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Run 'uikit init' to create one first")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check the YAML syntax in "+path)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return errors.New(errors.ErrConfig,
			"Invalid YAML document structure in "+path,
			"Run 'uikit init --force' to regenerate it")
	}

	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"Expected a mapping at the top of "+path,
			"Run 'uikit init --force' to regenerate it")
	}

	masksNode := findMapValue(docNode, "masks")
	if masksNode == nil {
		masksNode = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		docNode.Content = append(docNode.Content, scalar("masks"), masksNode)
	}
	if masksNode.Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"'masks' in "+path+" is not a mapping",
			"Use 'name: pattern' entries under masks")
	}

	if existing := findMapValue(masksNode, name); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = "!!str"
		existing.Value = pattern
	} else {
		masksNode.Content = append(masksNode.Content, scalar(name), scalar(pattern))
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check file permissions")
	}
	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
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
