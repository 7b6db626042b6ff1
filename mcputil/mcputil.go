// Package mcputil bridges UI resources into the official MCP Go SDK types so
// servers built on modelcontextprotocol/go-sdk can return them from tool
// handlers without copying fields by hand.
package mcputil

import (
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	mcpui "github.com/mcp-ui/mcp-ui-go"
)

// EmbeddedResource converts a UI resource into the SDK's embedded-resource
// content block. Blob resources are decoded back to raw bytes: the SDK holds
// blobs as []byte and re-encodes them when marshaling.
func EmbeddedResource(res *mcpui.UIResource) (*mcp.EmbeddedResource, error) {
	contents := &mcp.ResourceContents{
		URI:      res.Resource.URI,
		MIMEType: res.Resource.MIMEType,
	}
	if res.Resource.Blob != "" {
		data, err := base64.StdEncoding.DecodeString(res.Resource.Blob)
		if err != nil {
			return nil, fmt.Errorf("mcputil: decode blob for %s: %w", res.Resource.URI, err)
		}
		contents.Blob = data
	} else {
		contents.Text = res.Resource.Text
	}
	return &mcp.EmbeddedResource{Resource: contents}, nil
}

// CallToolResult wraps a UI resource in a single-content tool result.
func CallToolResult(res *mcpui.UIResource) (*mcp.CallToolResult, error) {
	embedded, err := EmbeddedResource(res)
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{Content: []mcp.Content{embedded}}, nil
}
