package mcpui

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// CreateUIResourceOptions configures a UI resource.
type CreateUIResourceOptions struct {
	// URI identifies the resource. Must start with "ui://".
	URI string `json:"uri"`

	// Content is the discriminated payload to render.
	Content ContentPayload `json:"content"`

	// Encoding selects text or blob framing for the content string.
	Encoding Encoding `json:"encoding"`
}

// ResourceContents is the inner resource record. Exactly one of Text or Blob
// is set, per the Encoding the resource was created with.
type ResourceContents struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"`
}

// UIResource is the envelope to include in the content array of a tool
// result.
type UIResource struct {
	Type     string           `json:"type"` // always "resource"
	Resource ResourceContents `json:"resource"`
}

// validate is the schema pass: shape and enum conformance only. Emptiness of
// the semantic strings is the content dispatch's concern.
func (o CreateUIResourceOptions) validate() error {
	if o.Content == nil {
		return &SchemaValidationError{
			Field:  "content",
			Reason: "content payload is required",
		}
	}
	switch o.Encoding {
	case EncodingText, EncodingBlob:
	default:
		return &SchemaValidationError{
			Field:   "encoding",
			Allowed: allowedEncodings,
			Reason:  fmt.Sprintf("unknown encoding %q", o.Encoding),
		}
	}
	if p, ok := o.Content.(RemoteDOMPayload); ok {
		switch p.Framework {
		case FrameworkReact, FrameworkWebComponents:
		default:
			return &SchemaValidationError{
				Field:   "content.framework",
				Allowed: allowedFrameworks,
				Reason:  fmt.Sprintf("unknown framework %q", p.Framework),
			}
		}
	}
	return nil
}

// CreateUIResource validates options, derives the MIME type from the content
// payload, encodes the content string per the requested encoding, and wraps
// it in the resource envelope.
//
// Validation runs in two separated steps: a schema pass over the options
// shape (SchemaValidationError), then the ui:// namespace check
// (InvalidURIError) and per-variant content checks (InvalidContentError). No
// partial resource is ever returned.
func CreateUIResource(opts CreateUIResourceOptions) (*UIResource, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(opts.URI, URIPrefix) {
		return nil, &InvalidURIError{URI: opts.URI}
	}

	var contentString, mimeType string
	switch content := opts.Content.(type) {
	case RawHTMLPayload:
		if content.HTMLString == "" {
			return nil, &InvalidContentError{
				Field:  "htmlString",
				Reason: `must be provided as a non-empty string when content.type is "rawHtml"`,
			}
		}
		contentString = content.HTMLString
		mimeType = MIMETypeHTML
	case ExternalURLPayload:
		if content.IframeURL == "" {
			return nil, &InvalidContentError{
				Field:  "iframeUrl",
				Reason: `must be provided as a non-empty string when content.type is "externalUrl"`,
			}
		}
		contentString = content.IframeURL
		mimeType = MIMETypeURIList
	case RemoteDOMPayload:
		if content.Script == "" {
			return nil, &InvalidContentError{
				Field:  "script",
				Reason: `must be provided as a non-empty string when content.type is "remoteDom"`,
			}
		}
		switch content.Framework {
		case FrameworkReact:
			mimeType = MIMETypeRemoteDOMReact
		case FrameworkWebComponents:
			mimeType = MIMETypeRemoteDOMWebComponents
		default:
			// validate() rejects this for typed callers; re-checked here for
			// inputs that bypass the schema pass.
			return nil, &InvalidContentError{
				Field:  "framework",
				Reason: fmt.Sprintf(`must be "react" or "webcomponents", got: %s`, content.Framework),
			}
		}
		contentString = content.Script
	default:
		// Unreachable through the sealed interface, but a caller outside the
		// typed boundary can still hand-implement ContentPayload.
		return nil, &InvalidContentError{
			Reason: fmt.Sprintf("invalid content.type specified: %s", opts.Content.ContentType()),
		}
	}

	resource := ResourceContents{URI: opts.URI, MIMEType: mimeType}
	switch opts.Encoding {
	case EncodingText:
		resource.Text = contentString
	case EncodingBlob:
		resource.Blob = base64.StdEncoding.EncodeToString([]byte(contentString))
	default:
		return nil, &InvalidContentError{
			Reason: fmt.Sprintf("invalid encoding type: %s", opts.Encoding),
		}
	}

	return &UIResource{Type: "resource", Resource: resource}, nil
}

// Allowed value lists shared by the schema passes.
var (
	allowedContentTypes = []string{string(ContentRawHTML), string(ContentExternalURL), string(ContentRemoteDOM)}
	allowedEncodings    = []string{string(EncodingText), string(EncodingBlob)}
	allowedFrameworks   = []string{string(FrameworkReact), string(FrameworkWebComponents)}
)

// CreateUIResourceFromJSON builds a UI resource from a raw JSON options
// document. It exists for callers outside the typed boundary (network peers,
// stored configs): every structural mismatch is reported as a
// SchemaValidationError naming the field path and its allowed values before
// CreateUIResource runs.
func CreateUIResourceFromJSON(raw []byte) (*UIResource, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &SchemaValidationError{Field: "options", Reason: "not valid JSON"}
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, &SchemaValidationError{Field: "options", Reason: "expected a JSON object"}
	}

	uri, err := requireString(doc, "uri")
	if err != nil {
		return nil, err
	}
	encoding, err := requireString(doc, "encoding")
	if err != nil {
		return nil, err
	}
	switch Encoding(encoding) {
	case EncodingText, EncodingBlob:
	default:
		return nil, &SchemaValidationError{
			Field:   "encoding",
			Allowed: allowedEncodings,
			Reason:  fmt.Sprintf("unknown encoding %q", encoding),
		}
	}

	content := doc.Get("content")
	if !content.Exists() || !content.IsObject() {
		return nil, &SchemaValidationError{Field: "content", Reason: "expected a JSON object"}
	}
	tag, err := requireString(doc, "content.type")
	if err != nil {
		return nil, err
	}

	var payload ContentPayload
	switch ContentType(tag) {
	case ContentRawHTML:
		s, err := requireString(doc, "content.htmlString")
		if err != nil {
			return nil, err
		}
		payload = RawHTMLPayload{HTMLString: s}
	case ContentExternalURL:
		s, err := requireString(doc, "content.iframeUrl")
		if err != nil {
			return nil, err
		}
		payload = ExternalURLPayload{IframeURL: s}
	case ContentRemoteDOM:
		script, err := requireString(doc, "content.script")
		if err != nil {
			return nil, err
		}
		framework, err := requireString(doc, "content.framework")
		if err != nil {
			return nil, err
		}
		switch RemoteDOMFramework(framework) {
		case FrameworkReact, FrameworkWebComponents:
		default:
			return nil, &SchemaValidationError{
				Field:   "content.framework",
				Allowed: allowedFrameworks,
				Reason:  fmt.Sprintf("unknown framework %q", framework),
			}
		}
		payload = RemoteDOMPayload{Script: script, Framework: RemoteDOMFramework(framework)}
	default:
		return nil, &SchemaValidationError{
			Field:   "content.type",
			Allowed: allowedContentTypes,
			Reason:  fmt.Sprintf("unknown content type %q", tag),
		}
	}

	return CreateUIResource(CreateUIResourceOptions{
		URI:      uri,
		Content:  payload,
		Encoding: Encoding(encoding),
	})
}

// requireString reads a required string field at path.
func requireString(doc gjson.Result, path string) (string, error) {
	v := doc.Get(path)
	if !v.Exists() {
		return "", &SchemaValidationError{Field: path, Reason: "required field is missing"}
	}
	if v.Type != gjson.String {
		return "", &SchemaValidationError{Field: path, Reason: "expected a string"}
	}
	return v.String(), nil
}
