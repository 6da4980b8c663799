package prompt

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the top-level envelope of a prompts document. The prompts
// field stays a raw node so an explicitly null section can be told apart
// from an absent key.
type document struct {
	Prompts yaml.Node `yaml:"prompts"`
}

// decodeDocument parses raw YAML into the ordered list of template
// records. Three shapes are distinguished: a document without a prompts
// key is valid and empty, an explicitly null prompts section is a
// validation failure, and anything else must decode as a sequence of
// records.
func decodeDocument(content string) ([]Spec, error) {
	var doc document
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	prompts := &doc.Prompts
	if prompts.Kind == yaml.AliasNode {
		prompts = prompts.Alias
	}
	if prompts.Kind == 0 {
		return nil, nil
	}
	if prompts.Kind == yaml.ScalarNode && prompts.Tag == "!!null" {
		return nil, &ValidationError{message: "no prompts section found in document"}
	}

	var specs []Spec
	if err := prompts.Decode(&specs); err != nil {
		return nil, &ValidationError{
			message: fmt.Sprintf("invalid prompts section: %v", err),
			cause:   err,
		}
	}
	return specs, nil
}
