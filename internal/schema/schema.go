// Package schema produces the declarative JSON Schema for the UI resource
// options document. It uses struct-tag reflection; runtime validation of
// incoming options is a separate explicit pass in the root package.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// optionsDoc mirrors the CreateUIResourceOptions wire shape for reflection.
type optionsDoc struct {
	URI      string     `json:"uri" jsonschema:"required,pattern=^ui://,description=Resource identifier in the ui:// namespace"`
	Content  contentDoc `json:"content" jsonschema:"required"`
	Encoding string     `json:"encoding" jsonschema:"required,enum=text,enum=blob,description=Whether the content string is carried verbatim or base64-encoded"`
}

type contentDoc struct {
	Type       string `json:"type" jsonschema:"required,enum=rawHtml,enum=externalUrl,enum=remoteDom"`
	HTMLString string `json:"htmlString,omitempty" jsonschema:"description=HTML fragment to render when type is rawHtml"`
	IframeURL  string `json:"iframeUrl,omitempty" jsonschema:"description=URL to embed in an iframe when type is externalUrl"`
	Script     string `json:"script,omitempty" jsonschema:"description=Remote-DOM script when type is remoteDom"`
	Framework  string `json:"framework,omitempty" jsonschema:"enum=react,enum=webcomponents"`
}

// Options returns the options document schema as raw JSON.
func Options() (json.RawMessage, error) {
	r := &jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(&optionsDoc{})
	return json.Marshal(s)
}
