package mcpui

import (
	"encoding/json"

	"github.com/mcp-ui/mcp-ui-go/internal/schema"
)

// OptionsJSONSchema returns a JSON Schema describing the
// CreateUIResourceOptions wire shape, for hosts that advertise or
// pre-validate the options document. Runtime enforcement stays with
// [CreateUIResource] and [CreateUIResourceFromJSON].
func OptionsJSONSchema() (json.RawMessage, error) {
	return schema.Options()
}
