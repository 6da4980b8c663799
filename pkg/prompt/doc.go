// Package prompt loads, validates, and renders parameterized prompt
// templates declared in a YAML document.
//
// A prompts document names each template and carries its text, optional
// sampling parameters, free-form model configuration, and typed contracts
// for the {placeholder} markers embedded in the text:
//
//	prompts:
//	  - name: greeting
//	    template: "Hello {name}, you are {age} years old!"
//	    parameters:
//	      temperature: 0.7
//	      maxTokens: 100
//	    placeholders:
//	      name: {type: string, required: true}
//	      age: {type: number}
//
// Loading replaces a registry's contents as one atomic step. A document
// that fails validation leaves the previously loaded templates in place:
//
//	registry := prompt.NewRegistry()
//	if err := registry.LoadFile(ctx, "prompts.yaml"); err != nil {
//	    return err
//	}
//
//	greeting, err := registry.GetRequired("greeting")
//	if err != nil {
//	    return err
//	}
//	text, err := greeting.Render(map[string]any{"name": "Alice", "age": 30})
//
// Rendering enforces the declared contracts: required placeholders must be
// supplied, and supplied values must match the declared type (string,
// number, or boolean). Markers with no declaration and no value render as
// the empty string, as do nil values.
package prompt
