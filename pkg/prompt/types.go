package prompt

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder type tokens accepted by the validator. Documents may spell
// them in any case; an absent or empty token means TypeString.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Spec is one template record as it appears in a prompts document. Records
// are plain data; they become renderable Templates only after passing
// Validate during a registry load.
type Spec struct {
	Name          string         `yaml:"name"`
	Version       string         `yaml:"version,omitempty"`
	Description   string         `yaml:"description,omitempty"`
	SystemMessage string         `yaml:"systemMessage,omitempty"`
	Template      string         `yaml:"template"`
	Parameters    *Parameters    `yaml:"parameters,omitempty"`
	ModelConfig   map[string]any `yaml:"modelConfig,omitempty"`
	Placeholders  Placeholders   `yaml:"placeholders,omitempty"`
	OutputFormat  string         `yaml:"outputFormat,omitempty"`
}

// Parameters carries the sampling settings attached to a template. Pointer
// fields distinguish absent settings from explicit zeroes; range rules
// apply only to fields that are present.
type Parameters struct {
	Temperature   *float64 `yaml:"temperature,omitempty"`
	TopP          *float64 `yaml:"topP,omitempty"`
	MaxTokens     *int     `yaml:"maxTokens,omitempty"`
	StopSequences []string `yaml:"stopSequences,omitempty"`
}

// clone copies the parameter set, including the pointed-to values.
func (p Parameters) clone() Parameters {
	out := p
	if p.Temperature != nil {
		v := *p.Temperature
		out.Temperature = &v
	}
	if p.TopP != nil {
		v := *p.TopP
		out.TopP = &v
	}
	if p.MaxTokens != nil {
		v := *p.MaxTokens
		out.MaxTokens = &v
	}
	if p.StopSequences != nil {
		out.StopSequences = append([]string(nil), p.StopSequences...)
	}
	return out
}

// Placeholder declares the contract for one substitution marker: the value
// kind it accepts and whether a value must be supplied at render time.
type Placeholder struct {
	Type     string `yaml:"type,omitempty"`
	Required bool   `yaml:"required,omitempty"`
}

// kind returns the canonical form of the declared type. It is only
// meaningful once the declaration has passed validation.
func (p Placeholder) kind() string {
	if p.Type == "" {
		return TypeString
	}
	return strings.ToLower(p.Type)
}

// Placeholders is the ordered set of placeholder declarations for one
// template. Document order is preserved so validation reports the first
// offending entry deterministically and re-encoded documents round-trip.
type Placeholders struct {
	names []string
	defs  map[string]Placeholder
}

// Len returns the number of declared placeholders.
func (p Placeholders) Len() int { return len(p.names) }

// Names returns the placeholder names in declaration order.
func (p Placeholders) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Get returns the declaration for name.
func (p Placeholders) Get(name string) (Placeholder, bool) {
	def, ok := p.defs[name]
	return def, ok
}

// Set adds or replaces a declaration. New names keep the order Set was
// called in; replacing an existing name keeps its original position.
func (p *Placeholders) Set(name string, def Placeholder) {
	if p.defs == nil {
		p.defs = make(map[string]Placeholder)
	}
	if _, seen := p.defs[name]; !seen {
		p.names = append(p.names, name)
	}
	p.defs[name] = def
}

// IsZero reports whether no placeholders are declared, letting yaml's
// omitempty skip the field when encoding.
func (p Placeholders) IsZero() bool { return len(p.names) == 0 }

// UnmarshalYAML decodes a YAML mapping while recording its key order. A
// null entry body declares a placeholder with default type and no
// required flag.
func (p *Placeholders) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("placeholders must be a mapping, got %s", node.Tag)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var def Placeholder
		value := node.Content[i+1]
		if !(value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
			if err := value.Decode(&def); err != nil {
				return err
			}
		}
		p.Set(key, def)
	}
	return nil
}

// MarshalYAML emits the declarations in their original order.
func (p Placeholders) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range p.names {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		value := &yaml.Node{}
		if err := value.Encode(p.defs[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// inferKind classifies a runtime value as one of the placeholder type
// tokens. Integers and floats are numbers, bools are booleans, and every
// other value, strings included, counts as a string.
func inferKind(value any) string {
	switch value.(type) {
	case bool:
		return TypeBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return TypeNumber
	default:
		return TypeString
	}
}
