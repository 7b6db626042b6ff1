package mcpui

import "encoding/json"

// URIPrefix is the namespace every UI resource URI must live under. It is
// the resource's stable identity namespace, distinguishing UI resources from
// ordinary protocol resource URIs.
const URIPrefix = "ui://"

// ContentType tags the variants of the content payload union.
type ContentType string

const (
	ContentRawHTML     ContentType = "rawHtml"
	ContentExternalURL ContentType = "externalUrl"
	ContentRemoteDOM   ContentType = "remoteDom"
)

// Encoding selects how the content string is carried in the resource.
type Encoding string

const (
	// EncodingText carries the content string verbatim.
	EncodingText Encoding = "text"

	// EncodingBlob carries the content string as padded base64 of its UTF-8
	// bytes, for transports that require binary-safe framing.
	EncodingBlob Encoding = "blob"
)

// RemoteDOMFramework selects the client runtime a remote-DOM script targets.
type RemoteDOMFramework string

const (
	FrameworkReact         RemoteDOMFramework = "react"
	FrameworkWebComponents RemoteDOMFramework = "webcomponents"
)

// MIME types derived from the content payload. Never user-supplied.
const (
	MIMETypeHTML                   = "text/html"
	MIMETypeURIList                = "text/uri-list"
	MIMETypeRemoteDOMReact         = "application/vnd.mcp-ui.remote-dom+javascript; framework=react"
	MIMETypeRemoteDOMWebComponents = "application/vnd.mcp-ui.remote-dom+javascript; framework=webcomponents"
)

// ContentPayload is the discriminated content union. Implementations are
// [RawHTMLPayload], [ExternalURLPayload], and [RemoteDOMPayload].
type ContentPayload interface {
	ContentType() ContentType
	isContentPayload()
}

// RawHTMLPayload renders an HTML fragment directly.
type RawHTMLPayload struct {
	HTMLString string `json:"htmlString"`
}

func (RawHTMLPayload) ContentType() ContentType { return ContentRawHTML }
func (RawHTMLPayload) isContentPayload()        {}

// MarshalJSON emits the type tag alongside the payload fields.
func (p RawHTMLPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       ContentType `json:"type"`
		HTMLString string      `json:"htmlString"`
	}{ContentRawHTML, p.HTMLString})
}

// ExternalURLPayload embeds a URL in an iframe.
type ExternalURLPayload struct {
	IframeURL string `json:"iframeUrl"`
}

func (ExternalURLPayload) ContentType() ContentType { return ContentExternalURL }
func (ExternalURLPayload) isContentPayload()        {}

func (p ExternalURLPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      ContentType `json:"type"`
		IframeURL string      `json:"iframeUrl"`
	}{ContentExternalURL, p.IframeURL})
}

// RemoteDOMPayload carries a script interpreted by a remote-DOM runtime on
// the client.
type RemoteDOMPayload struct {
	Script    string             `json:"script"`
	Framework RemoteDOMFramework `json:"framework"`
}

func (RemoteDOMPayload) ContentType() ContentType { return ContentRemoteDOM }
func (RemoteDOMPayload) isContentPayload()        {}

func (p RemoteDOMPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      ContentType        `json:"type"`
		Script    string             `json:"script"`
		Framework RemoteDOMFramework `json:"framework"`
	}{ContentRemoteDOM, p.Script, p.Framework})
}
