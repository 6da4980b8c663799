package prompt

import (
	"fmt"
	"strings"
)

// Template is a validated prompt template ready for rendering. Templates
// are immutable; the registry hands the same instance to every caller and
// the accessors return copies of any mutable state.
type Template struct {
	spec Spec
}

// newTemplate wraps a record that has already passed Validate.
func newTemplate(spec Spec) *Template {
	return &Template{spec: spec}
}

// Name returns the unique template name.
func (t *Template) Name() string { return t.spec.Name }

// Version returns the declared version, or the empty string.
func (t *Template) Version() string { return t.spec.Version }

// Description returns the declared description, or the empty string.
func (t *Template) Description() string { return t.spec.Description }

// SystemMessage returns the system message to pair with rendered output,
// or the empty string.
func (t *Template) SystemMessage() string { return t.spec.SystemMessage }

// OutputFormat returns the declared output format hint, or the empty
// string.
func (t *Template) OutputFormat() string { return t.spec.OutputFormat }

// Text returns the raw template text with its markers intact.
func (t *Template) Text() string { return t.spec.Template }

// Parameters returns the sampling parameters, or zero values when the
// template declares none.
func (t *Template) Parameters() Parameters {
	if t.spec.Parameters == nil {
		return Parameters{}
	}
	return t.spec.Parameters.clone()
}

// ModelConfig returns a copy of the free-form model configuration mapping,
// empty when none was declared.
func (t *Template) ModelConfig() map[string]any {
	cfg := make(map[string]any, len(t.spec.ModelConfig))
	for k, v := range t.spec.ModelConfig {
		cfg[k] = v
	}
	return cfg
}

// Placeholders returns a copy of the declared placeholder contracts in
// document order.
func (t *Template) Placeholders() Placeholders {
	var out Placeholders
	for _, name := range t.spec.Placeholders.names {
		out.Set(name, t.spec.Placeholders.defs[name])
	}
	return out
}

// Spec returns a copy of the underlying record, suitable for re-encoding.
func (t *Template) Spec() Spec {
	spec := t.spec
	if len(spec.ModelConfig) > 0 {
		spec.ModelConfig = t.ModelConfig()
	}
	spec.Placeholders = t.Placeholders()
	if spec.Parameters != nil {
		params := spec.Parameters.clone()
		spec.Parameters = &params
	}
	return spec
}

// Render substitutes the supplied values into the template text. Required
// placeholders must have an entry in values, and non-nil entries must
// match their declared types. Markers with no value and no declaration
// render as the empty string, as do nil values.
func (t *Template) Render(values map[string]any) (string, error) {
	if values == nil {
		return "", fmt.Errorf("values cannot be nil: %w", ErrInvalidArgument)
	}
	if err := t.checkValues(values); err != nil {
		return "", err
	}
	return t.substitute(values)
}

// checkValues enforces the placeholder contracts before any substitution:
// every required declaration needs a key in values, and every supplied
// non-nil value must match the declared type. Declarations are walked in
// document order so the first offender is reported.
func (t *Template) checkValues(values map[string]any) error {
	for _, key := range t.spec.Placeholders.names {
		def := t.spec.Placeholders.defs[key]
		value, ok := values[key]
		if !ok {
			if def.Required {
				return &MissingPlaceholderError{Placeholder: key}
			}
			continue
		}
		if value == nil {
			continue
		}
		if actual := inferKind(value); actual != def.kind() {
			return &PlaceholderTypeError{Placeholder: key, Expected: def.kind(), Actual: actual}
		}
	}
	return nil
}

// substitute performs one left-to-right pass over the template text,
// replacing each marker as it is found. A marker body is a run of one or
// more non-'}' characters, so "{}" passes through as literal text and an
// unterminated '{' runs to the end verbatim.
func (t *Template) substitute(values map[string]any) (string, error) {
	text := t.spec.Template
	var out strings.Builder
	out.Grow(len(text))

	for {
		open := strings.IndexByte(text, '{')
		if open == -1 {
			out.WriteString(text)
			return out.String(), nil
		}
		end := strings.IndexByte(text[open+1:], '}')
		if end == -1 {
			out.WriteString(text)
			return out.String(), nil
		}
		end += open + 1

		out.WriteString(text[:open])
		if end == open+1 {
			out.WriteString("{}")
		} else {
			replacement, err := t.resolve(text[open+1:end], values)
			if err != nil {
				return "", err
			}
			out.WriteString(replacement)
		}
		text = text[end+1:]
	}
}

// resolve produces the replacement text for one marker. A required
// placeholder with no entry in values fails here as well, so the marker
// scan raises the same error kind as the pre-render check.
func (t *Template) resolve(name string, values map[string]any) (string, error) {
	value, ok := values[name]
	if !ok {
		if def, declared := t.spec.Placeholders.defs[name]; declared && def.Required {
			return "", &MissingPlaceholderError{Placeholder: name}
		}
		return "", nil
	}
	if value == nil {
		return "", nil
	}
	return stringify(value), nil
}

// stringify renders a replacement value. Strings pass through verbatim;
// everything else uses fmt's default formatting.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// PlaceholderNames returns the marker names referenced by the template
// text, in first-occurrence order with duplicates collapsed.
func (t *Template) PlaceholderNames() []string {
	text := t.spec.Template
	seen := make(map[string]bool)
	names := []string{}

	for {
		open := strings.IndexByte(text, '{')
		if open == -1 {
			return names
		}
		end := strings.IndexByte(text[open+1:], '}')
		if end == -1 {
			return names
		}
		end += open + 1

		if end > open+1 {
			name := text[open+1 : end]
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		text = text[end+1:]
	}
}
