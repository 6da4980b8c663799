package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectValues(t *testing.T) {
	t.Run("set values keep their scalar types", func(t *testing.T) {
		values, err := collectValues("", []string{
			"name=Alice",
			"age=30",
			"score=1.5",
			"active=true",
			"note=null",
			`id="30"`,
		}, nil)
		require.NoError(t, err)

		want := map[string]any{
			"name":   "Alice",
			"age":    30,
			"score":  1.5,
			"active": true,
			"note":   nil,
			"id":     "30",
		}
		if diff := cmp.Diff(want, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("set-string values stay literal", func(t *testing.T) {
		values, err := collectValues("", nil, []string{"age=30", "flag=true"})
		require.NoError(t, err)

		want := map[string]any{"age": "30", "flag": "true"}
		if diff := cmp.Diff(want, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("flags override the values file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "values.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: Bob\nage: 20\ncity: Oslo\n"), 0o644))

		values, err := collectValues(path, []string{"age=30"}, []string{"name=Alice"})
		require.NoError(t, err)

		want := map[string]any{"name": "Alice", "age": 30, "city": "Oslo"}
		if diff := cmp.Diff(want, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("set-string overrides set", func(t *testing.T) {
		values, err := collectValues("", []string{"age=30"}, []string{"age=thirty"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"age": "thirty"}, values)
	})

	t.Run("missing values file", func(t *testing.T) {
		_, err := collectValues(filepath.Join(t.TempDir(), "absent.yaml"), nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read values file")
	})

	t.Run("values file must hold a mapping", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "values.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- just\n- a\n- list\n"), 0o644))

		_, err := collectValues(path, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse values file")
	})

	t.Run("malformed pairs are rejected", func(t *testing.T) {
		_, err := collectValues("", []string{"noequals"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid --set value "noequals"`)

		_, err = collectValues("", nil, []string{"=value"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--set-string")
	})

	t.Run("empty value is an explicit null", func(t *testing.T) {
		values, err := collectValues("", []string{"name="}, nil)
		require.NoError(t, err)
		value, ok := values["name"]
		assert.True(t, ok)
		assert.Nil(t, value)
	})
}

func TestRenderCommand(t *testing.T) {
	t.Run("renders with typed values", func(t *testing.T) {
		writeDocument(t, commandDocument)

		renderSet = []string{"name=Alice", "age=30"}
		defer func() { renderSet = nil }()

		var buf bytes.Buffer
		renderCmd.SetOut(&buf)
		defer renderCmd.SetOut(nil)
		renderCmd.SetContext(context.Background())

		require.NoError(t, renderCmd.RunE(renderCmd, []string{"greeting"}))
		assert.Equal(t, "Hello Alice, you are 30 years old!\n", buf.String())
	})

	t.Run("reports type mismatches", func(t *testing.T) {
		writeDocument(t, commandDocument)

		renderSetString = []string{"age=30"}
		renderSet = []string{"name=Alice"}
		defer func() {
			renderSetString = nil
			renderSet = nil
		}()

		renderCmd.SetContext(context.Background())
		err := renderCmd.RunE(renderCmd, []string{"greeting"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `placeholder "age" expected type "number" but received "string"`)
	})

	t.Run("reports missing required placeholders", func(t *testing.T) {
		writeDocument(t, commandDocument)

		renderCmd.SetContext(context.Background())
		err := renderCmd.RunE(renderCmd, []string{"greeting"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required placeholder "name" is missing`)
	})

	t.Run("unknown template", func(t *testing.T) {
		writeDocument(t, commandDocument)

		renderCmd.SetContext(context.Background())
		err := renderCmd.RunE(renderCmd, []string{"nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `prompt template "nope" not found`)
	})
}
