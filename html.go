package mcpui

import "strings"

// ValidURI reports whether uri lives in the ui:// namespace.
func ValidURI(uri string) bool {
	return strings.HasPrefix(uri, URIPrefix)
}

// ReservedURLParamWaitForRenderData is the query parameter an external URL
// sets to defer rendering until the host supplies render data.
const ReservedURLParamWaitForRenderData = "waitForRenderData"

// Internal message types exchanged between a rendered UI and its host over
// the iframe postMessage channel.
const (
	MessageTypeUIMessageReceived           = "ui-message-received"
	MessageTypeUIMessageResponse           = "ui-message-response"
	MessageTypeUISizeChange                = "ui-size-change"
	MessageTypeUILifecycleIframeReady      = "ui-lifecycle-iframe-ready"
	MessageTypeUILifecycleIframeRenderData = "ui-lifecycle-iframe-render-data"
)

const iframeCommunicationScript = `
// MCP UI communication script
(function() {
    window.mcpUI = {
        postMessage: function(data) {
            if (window.parent) {
                window.parent.postMessage(data, '*');
            }
        },

        onMessage: function(callback) {
            window.addEventListener('message', function(event) {
                callback(event.data);
            });
        }
    };
})();
`

// IframeCommunicationScript returns the JavaScript bridge a UI resource uses
// to exchange postMessage events with its parent frame.
func IframeCommunicationScript() string {
	return iframeCommunicationScript
}

// WrapHTMLWithCommunication splices the communication script into an HTML
// fragment. The script lands in an existing <head>, in a new <head> after
// <html> when none exists, or the fragment is wrapped in a full document.
// With includeScript false the content is returned untouched.
func WrapHTMLWithCommunication(htmlContent string, includeScript bool) string {
	if !includeScript {
		return htmlContent
	}
	script := "<script>" + iframeCommunicationScript + "</script>"

	if strings.Contains(htmlContent, "<head>") {
		return strings.Replace(htmlContent, "<head>", "<head>"+script, 1)
	}
	if strings.Contains(htmlContent, "<html>") {
		return strings.Replace(htmlContent, "<html>", "<html><head>"+script+"</head>", 1)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n    ")
	b.WriteString(script)
	b.WriteString("\n</head>\n<body>\n")
	b.WriteString(htmlContent)
	b.WriteString("\n</body>\n</html>")
	return b.String()
}
