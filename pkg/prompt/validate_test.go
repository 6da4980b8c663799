package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidate(t *testing.T) {
	t.Run("minimal valid spec", func(t *testing.T) {
		spec := Spec{Name: "greeting", Template: "Hello {name}!"}
		assert.NoError(t, Validate(&spec))
	})

	t.Run("empty name", func(t *testing.T) {
		spec := Spec{Name: "", Template: "Hello!"}
		err := Validate(&spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")

		spec.Name = "   "
		err = Validate(&spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("empty template", func(t *testing.T) {
		spec := Spec{Name: "greeting", Template: "  "}
		err := Validate(&spec)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "greeting", verr.Template)
		assert.Contains(t, err.Error(), "template is required")
	})

	t.Run("temperature range", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t", Parameters: &Parameters{Temperature: floatPtr(2.1)}}
		err := Validate(&spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temperature must be between 0.0 and 2.0")

		spec.Parameters.Temperature = floatPtr(-0.1)
		assert.Error(t, Validate(&spec))

		// Boundaries are inclusive.
		spec.Parameters.Temperature = floatPtr(0)
		assert.NoError(t, Validate(&spec))
		spec.Parameters.Temperature = floatPtr(2)
		assert.NoError(t, Validate(&spec))
	})

	t.Run("topP range", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t", Parameters: &Parameters{TopP: floatPtr(1.5)}}
		err := Validate(&spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "topP must be between 0.0 and 1.0")

		spec.Parameters.TopP = floatPtr(-0.01)
		assert.Error(t, Validate(&spec))

		spec.Parameters.TopP = floatPtr(0)
		assert.NoError(t, Validate(&spec))
		spec.Parameters.TopP = floatPtr(1)
		assert.NoError(t, Validate(&spec))
	})

	t.Run("maxTokens must be positive", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t", Parameters: &Parameters{MaxTokens: intPtr(0)}}
		err := Validate(&spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "maxTokens must be greater than 0")

		spec.Parameters.MaxTokens = intPtr(-100)
		assert.Error(t, Validate(&spec))

		spec.Parameters.MaxTokens = intPtr(1)
		assert.NoError(t, Validate(&spec))
	})

	t.Run("absent parameters are not checked", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t", Parameters: &Parameters{StopSequences: []string{"END"}}}
		assert.NoError(t, Validate(&spec))

		spec.Parameters = nil
		assert.NoError(t, Validate(&spec))
	})

	t.Run("empty placeholder name", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t"}
		spec.Placeholders.Set("", Placeholder{Type: "string"})

		err := Validate(&spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "placeholder name cannot be empty")
	})

	t.Run("invalid placeholder type", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t"}
		spec.Placeholders.Set("count", Placeholder{Type: "integer"})

		err := Validate(&spec)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "p", verr.Template)
		assert.Equal(t, "count", verr.Placeholder)
		assert.Equal(t, "integer", verr.Type)
		assert.Contains(t, err.Error(), "invalid placeholder type")
	})

	t.Run("placeholder types are case-insensitive", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t"}
		spec.Placeholders.Set("a", Placeholder{Type: "String"})
		spec.Placeholders.Set("b", Placeholder{Type: "NUMBER"})
		spec.Placeholders.Set("c", Placeholder{Type: "Boolean"})

		assert.NoError(t, Validate(&spec))
	})

	t.Run("placeholder type defaults to string", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t"}
		spec.Placeholders.Set("a", Placeholder{})

		assert.NoError(t, Validate(&spec))
	})

	t.Run("first failing rule is reported", func(t *testing.T) {
		// An empty template and a bad temperature: the template check
		// comes first.
		spec := Spec{
			Name:       "p",
			Template:   "",
			Parameters: &Parameters{Temperature: floatPtr(9)},
		}
		err := Validate(&spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template is required")

		// A bad temperature and a bad placeholder: temperature first.
		spec.Template = "t"
		spec.Placeholders.Set("x", Placeholder{Type: "integer"})
		err = Validate(&spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temperature")
	})

	t.Run("placeholders are checked in declaration order", func(t *testing.T) {
		spec := Spec{Name: "p", Template: "t"}
		spec.Placeholders.Set("first", Placeholder{Type: "integer"})
		spec.Placeholders.Set("second", Placeholder{Type: "float"})

		var verr *ValidationError
		require.ErrorAs(t, Validate(&spec), &verr)
		assert.Equal(t, "first", verr.Placeholder)
	})

	t.Run("validation errors are template errors", func(t *testing.T) {
		spec := Spec{Name: "", Template: "t"}
		assert.True(t, IsTemplateError(Validate(&spec)))
	})
}
