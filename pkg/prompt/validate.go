package prompt

import (
	"fmt"
	"strings"
)

// Validate checks a single template record against the document schema.
// Checks run in a fixed order and the first violation is the one returned:
// name, template text, temperature range, topP range, maxTokens, then each
// placeholder declaration in document order. Name uniqueness is a registry
// concern and is not checked here.
func Validate(spec *Spec) error {
	if strings.TrimSpace(spec.Name) == "" {
		return &ValidationError{message: "prompt name is required and cannot be empty"}
	}
	if strings.TrimSpace(spec.Template) == "" {
		return &ValidationError{
			Template: spec.Name,
			message:  fmt.Sprintf("template is required for prompt %q and cannot be empty", spec.Name),
		}
	}

	if params := spec.Parameters; params != nil {
		if t := params.Temperature; t != nil && (*t < 0 || *t > 2) {
			return &ValidationError{
				Template: spec.Name,
				message:  fmt.Sprintf("temperature must be between 0.0 and 2.0 for prompt %q, got %v", spec.Name, *t),
			}
		}
		if p := params.TopP; p != nil && (*p < 0 || *p > 1) {
			return &ValidationError{
				Template: spec.Name,
				message:  fmt.Sprintf("topP must be between 0.0 and 1.0 for prompt %q, got %v", spec.Name, *p),
			}
		}
		if m := params.MaxTokens; m != nil && *m <= 0 {
			return &ValidationError{
				Template: spec.Name,
				message:  fmt.Sprintf("maxTokens must be greater than 0 for prompt %q, got %d", spec.Name, *m),
			}
		}
	}

	for _, key := range spec.Placeholders.names {
		if strings.TrimSpace(key) == "" {
			return &ValidationError{
				Template: spec.Name,
				message:  fmt.Sprintf("placeholder name cannot be empty in prompt %q", spec.Name),
			}
		}
		if def := spec.Placeholders.defs[key]; !validPlaceholderType(def.Type) {
			return &ValidationError{
				Template:    spec.Name,
				Placeholder: key,
				Type:        def.Type,
				message: fmt.Sprintf("invalid placeholder type %q for placeholder %q in prompt %q, must be one of string, number, boolean",
					def.Type, key, spec.Name),
			}
		}
	}

	return nil
}

// validPlaceholderType accepts the three type tokens in any case, plus the
// empty token, which defaults to string.
func validPlaceholderType(token string) bool {
	switch strings.ToLower(token) {
	case "", TypeString, TypeNumber, TypeBoolean:
		return true
	}
	return false
}
