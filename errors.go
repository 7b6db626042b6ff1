package mcpui

import (
	"fmt"
	"strings"
)

// SchemaValidationError reports input that does not conform to the
// CreateUIResourceOptions shape: a wrong field type, an unknown union tag, or
// an enum value outside its allowed set.
type SchemaValidationError struct {
	// Field is the path of the offending field, e.g. "content.framework".
	Field string

	// Allowed lists the accepted values when the failure is an enum or tag
	// violation. Empty for structural mismatches.
	Allowed []string

	// Reason describes the mismatch.
	Reason string
}

func (e *SchemaValidationError) Error() string {
	msg := fmt.Sprintf("mcpui: invalid options: %s: %s", e.Field, e.Reason)
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return msg
}

// InvalidURIError reports a resource URI outside the ui:// namespace. URI
// echoes the rejected value verbatim.
type InvalidURIError struct {
	URI string
}

func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("mcpui: URI must start with %q but got: %s", URIPrefix, e.URI)
}

// InvalidContentError reports a content payload rejected at the dispatch
// layer: an empty required field, a framework outside its allowed set, or an
// unrecognized content or encoding tag.
type InvalidContentError struct {
	// Field names the offending payload field when one exists.
	Field string

	Reason string
}

func (e *InvalidContentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("mcpui: invalid content: %s %s", e.Field, e.Reason)
	}
	return "mcpui: invalid content: " + e.Reason
}

// DeserializationError reports malformed JSON or an action-result payload
// whose shape does not match its declared type.
type DeserializationError struct {
	Reason string
}

func (e *DeserializationError) Error() string {
	return "mcpui: deserialize action result: " + e.Reason
}
