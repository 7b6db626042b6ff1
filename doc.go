// Package mcpui provides server-side construction of MCP UI resources.
//
// A UI resource is a self-describing, URI-addressed payload a tool-calling
// server returns so the client can render an interactive fragment: raw HTML,
// an external URL to embed in an iframe, or a remote-DOM script interpreted
// by a client-side runtime. The package also defines the typed vocabulary of
// action results a rendered UI sends back to its host (tool calls, prompts,
// links, intents, notifications).
//
// # Quick Start
//
//	res, err := mcpui.CreateUIResource(mcpui.CreateUIResourceOptions{
//	    URI:      "ui://greeting",
//	    Content:  mcpui.RawHTMLPayload{HTMLString: "<h1>Hi</h1>"},
//	    Encoding: mcpui.EncodingText,
//	})
//
// The resulting [UIResource] belongs in the content array of a tool result.
// Everything here is a pure constructor over its input: no I/O, no shared
// state, safe for concurrent use.
//
// # Sub-packages
//
//   - mcputil converts UIResource values into modelcontextprotocol/go-sdk
//     types for servers built on the official MCP Go SDK.
package mcpui
