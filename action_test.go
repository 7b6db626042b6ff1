package mcpui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCallResult(t *testing.T) {
	r := ToolCallResult("search", map[string]any{"query": "docs"})

	assert.Equal(t, UIActionTool, r.ActionType())
	assert.Equal(t, "search", r.Payload.ToolName)
	assert.Equal(t, map[string]any{"query": "docs"}, r.Payload.Params)
	assert.Nil(t, r.MessageID)
}

func TestPromptResult(t *testing.T) {
	r := PromptResult("What next?")

	assert.Equal(t, UIActionPrompt, r.ActionType())
	assert.Equal(t, "What next?", r.Payload.Prompt)
	assert.Nil(t, r.MessageID)
}

func TestLinkResult(t *testing.T) {
	r := LinkResult("https://example.com")

	assert.Equal(t, UIActionLink, r.ActionType())
	assert.Equal(t, "https://example.com", r.Payload.URL)
	assert.Nil(t, r.MessageID)
}

func TestIntentResult(t *testing.T) {
	r := IntentResult("nav", map[string]any{"page": "dash"})

	assert.Equal(t, UIActionIntent, r.ActionType())
	assert.Equal(t, "nav", r.Payload.Intent)
	assert.Equal(t, map[string]any{"page": "dash"}, r.Payload.Params)
	assert.Nil(t, r.MessageID)
}

func TestNotificationResult(t *testing.T) {
	r := NotificationResult("saved")

	assert.Equal(t, UIActionNotify, r.ActionType())
	assert.Equal(t, "saved", r.Payload.Message)
	assert.Nil(t, r.MessageID)
}

// Empty strings are permitted: action payloads are opaque to this layer.
func TestEmptyPayloadStringsPermitted(t *testing.T) {
	assert.Equal(t, "", PromptResult("").Payload.Prompt)
	assert.Equal(t, "", NotificationResult("").Payload.Message)
	assert.Empty(t, IntentResult("refresh", map[string]any{}).Payload.Params)
}

func TestSerializeEmitsNullMessageID(t *testing.T) {
	data, err := SerializeUIActionResult(NotificationResult("saved"))
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(data), `"messageId":null`),
		"expected explicit null messageId in %s", data)
}

func TestRoundTripAllVariants(t *testing.T) {
	cases := []struct {
		name   string
		result UIActionResult
	}{
		{"tool", ToolCallResult("search", map[string]any{"query": "docs", "limit": "5"})},
		{"prompt", PromptResult("What next?")},
		{"link", LinkResult("https://example.com")},
		{"intent", IntentResult("nav", map[string]any{"page": "dash"})},
		{"notify", NotificationResult("saved")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := SerializeUIActionResult(tc.result)
			require.NoError(t, err)

			decoded, err := DeserializeUIActionResult(data)
			require.NoError(t, err)
			assert.Equal(t, tc.result, decoded)
		})
	}
}

func TestRoundTripWithMessageID(t *testing.T) {
	id := NewMessageID()
	require.NotEmpty(t, id)

	original := LinkResult("https://example.com").WithMessageID(id)
	data, err := SerializeUIActionResult(original)
	require.NoError(t, err)

	decoded, err := DeserializeUIActionResult(data)
	require.NoError(t, err)

	link, ok := decoded.(*UIActionResultLink)
	require.True(t, ok)
	require.NotNil(t, link.MessageID)
	assert.Equal(t, id, *link.MessageID)
	assert.Equal(t, original, decoded)
}

func TestNewMessageIDUnique(t *testing.T) {
	assert.NotEqual(t, NewMessageID(), NewMessageID())
}

func TestDeserializeErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"invalidJSON", `{"type":`},
		{"notObject", `"tool"`},
		{"missingType", `{"payload":{"prompt":"x"}}`},
		{"missingPayload", `{"type":"prompt"}`},
		{"unknownType", `{"type":"dance","payload":{}}`},
		{"toolMissingToolName", `{"type":"tool","payload":{"params":{}}}`},
		{"toolMissingParams", `{"type":"tool","payload":{"toolName":"x"}}`},
		{"promptMissingPrompt", `{"type":"prompt","payload":{}}`},
		{"linkMissingURL", `{"type":"link","payload":{}}`},
		{"intentMissingIntent", `{"type":"intent","payload":{"params":{}}}`},
		{"notifyMissingMessage", `{"type":"notify","payload":{}}`},
		{"payloadWrongShape", `{"type":"tool","payload":{"toolName":"x","params":"not-a-map"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DeserializeUIActionResult([]byte(tc.raw))
			assert.Nil(t, result)

			var deserErr *DeserializationError
			require.ErrorAs(t, err, &deserErr)
		})
	}
}

func TestDeserializeUnknownTypeNamesTag(t *testing.T) {
	_, err := DeserializeUIActionResult([]byte(`{"type":"dance","payload":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dance")
}
