package prompt

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks calls that were malformed before any document
// or template was consulted: empty raw text to Load, an empty name to a
// lookup, a nil values map to Render. Match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// templateError is implemented by every error describing a bad document or
// a failed render. Invalid-argument and not-found errors are deliberately
// outside the family.
type templateError interface {
	error
	isTemplateError()
}

// IsTemplateError reports whether err is a parse, validation, missing
// placeholder, or placeholder type error.
func IsTemplateError(err error) bool {
	var te templateError
	return errors.As(err, &te)
}

// ParseError reports raw text the deserializer could not parse at all. The
// underlying cause is available through Unwrap.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse prompts document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) isTemplateError() {}

// ValidationError reports a document that parsed but violates the template
// schema: a missing required field, an out-of-range parameter, a bad
// placeholder declaration, a duplicate name, or a null prompts section.
// Template, Placeholder, and Type carry the offending parts when known.
type ValidationError struct {
	Template    string
	Placeholder string
	Type        string

	message string
	cause   error
}

func (e *ValidationError) Error() string { return e.message }

func (e *ValidationError) Unwrap() error { return e.cause }

func (e *ValidationError) isTemplateError() {}

// MissingPlaceholderError reports a required placeholder with no entry in
// the values passed to Render.
type MissingPlaceholderError struct {
	Placeholder string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("required placeholder %q is missing from the provided values", e.Placeholder)
}

func (e *MissingPlaceholderError) isTemplateError() {}

// PlaceholderTypeError reports a supplied value whose inferred kind does
// not match the placeholder's declared type.
type PlaceholderTypeError struct {
	Placeholder string
	Expected    string
	Actual      string
}

func (e *PlaceholderTypeError) Error() string {
	return fmt.Sprintf("placeholder %q expected type %q but received %q", e.Placeholder, e.Expected, e.Actual)
}

func (e *PlaceholderTypeError) isTemplateError() {}

// NotFoundError reports a GetRequired call for a name with no loaded
// template.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("prompt template %q not found", e.Name)
}
