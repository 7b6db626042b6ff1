package mcpui

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// UIActionType tags the variants of the action-result union.
type UIActionType string

const (
	UIActionTool   UIActionType = "tool"
	UIActionPrompt UIActionType = "prompt"
	UIActionLink   UIActionType = "link"
	UIActionIntent UIActionType = "intent"
	UIActionNotify UIActionType = "notify"
)

// UIActionResult is a typed message a rendered UI sends back to its host.
// Implementations are the five UIActionResult* variants. All variants carry
// an optional messageId correlation field, absent by default and serialized
// as an explicit null when unset.
type UIActionResult interface {
	ActionType() UIActionType
	isUIActionResult()
}

// NewMessageID mints a correlation ID for an action result.
func NewMessageID() string { return uuid.NewString() }

// ToolCallPayload asks the host to invoke a tool.
type ToolCallPayload struct {
	ToolName string         `json:"toolName"`
	Params   map[string]any `json:"params"`
}

// UIActionResultToolCall requests a tool invocation.
type UIActionResultToolCall struct {
	Type      UIActionType    `json:"type"`
	Payload   ToolCallPayload `json:"payload"`
	MessageID *string         `json:"messageId"`
}

func (*UIActionResultToolCall) ActionType() UIActionType { return UIActionTool }
func (*UIActionResultToolCall) isUIActionResult()        {}

// WithMessageID sets the correlation ID and returns the result for chaining.
func (r *UIActionResultToolCall) WithMessageID(id string) *UIActionResultToolCall {
	r.MessageID = &id
	return r
}

// ToolCallResult builds a tool-call action result. MessageID is left absent.
func ToolCallResult(toolName string, params map[string]any) *UIActionResultToolCall {
	return &UIActionResultToolCall{
		Type:    UIActionTool,
		Payload: ToolCallPayload{ToolName: toolName, Params: params},
	}
}

// PromptPayload asks the host to show a prompt.
type PromptPayload struct {
	Prompt string `json:"prompt"`
}

// UIActionResultPrompt requests that the host surface a prompt.
type UIActionResultPrompt struct {
	Type      UIActionType  `json:"type"`
	Payload   PromptPayload `json:"payload"`
	MessageID *string       `json:"messageId"`
}

func (*UIActionResultPrompt) ActionType() UIActionType { return UIActionPrompt }
func (*UIActionResultPrompt) isUIActionResult()        {}

func (r *UIActionResultPrompt) WithMessageID(id string) *UIActionResultPrompt {
	r.MessageID = &id
	return r
}

// PromptResult builds a prompt action result. MessageID is left absent.
func PromptResult(prompt string) *UIActionResultPrompt {
	return &UIActionResultPrompt{
		Type:    UIActionPrompt,
		Payload: PromptPayload{Prompt: prompt},
	}
}

// LinkPayload asks the host to navigate to a URL.
type LinkPayload struct {
	URL string `json:"url"`
}

// UIActionResultLink requests link navigation.
type UIActionResultLink struct {
	Type      UIActionType `json:"type"`
	Payload   LinkPayload  `json:"payload"`
	MessageID *string      `json:"messageId"`
}

func (*UIActionResultLink) ActionType() UIActionType { return UIActionLink }
func (*UIActionResultLink) isUIActionResult()        {}

func (r *UIActionResultLink) WithMessageID(id string) *UIActionResultLink {
	r.MessageID = &id
	return r
}

// LinkResult builds a link action result. MessageID is left absent.
func LinkResult(url string) *UIActionResultLink {
	return &UIActionResultLink{
		Type:    UIActionLink,
		Payload: LinkPayload{URL: url},
	}
}

// IntentPayload raises an application intent with parameters.
type IntentPayload struct {
	Intent string         `json:"intent"`
	Params map[string]any `json:"params"`
}

// UIActionResultIntent raises an application intent.
type UIActionResultIntent struct {
	Type      UIActionType  `json:"type"`
	Payload   IntentPayload `json:"payload"`
	MessageID *string       `json:"messageId"`
}

func (*UIActionResultIntent) ActionType() UIActionType { return UIActionIntent }
func (*UIActionResultIntent) isUIActionResult()        {}

func (r *UIActionResultIntent) WithMessageID(id string) *UIActionResultIntent {
	r.MessageID = &id
	return r
}

// IntentResult builds an intent action result. MessageID is left absent.
func IntentResult(intent string, params map[string]any) *UIActionResultIntent {
	return &UIActionResultIntent{
		Type:    UIActionIntent,
		Payload: IntentPayload{Intent: intent, Params: params},
	}
}

// NotificationPayload emits a notification message.
type NotificationPayload struct {
	Message string `json:"message"`
}

// UIActionResultNotification emits a notification.
type UIActionResultNotification struct {
	Type      UIActionType        `json:"type"`
	Payload   NotificationPayload `json:"payload"`
	MessageID *string             `json:"messageId"`
}

func (*UIActionResultNotification) ActionType() UIActionType { return UIActionNotify }
func (*UIActionResultNotification) isUIActionResult()        {}

func (r *UIActionResultNotification) WithMessageID(id string) *UIActionResultNotification {
	r.MessageID = &id
	return r
}

// NotificationResult builds a notification action result. MessageID is left
// absent.
func NotificationResult(message string) *UIActionResultNotification {
	return &UIActionResultNotification{
		Type:    UIActionNotify,
		Payload: NotificationPayload{Message: message},
	}
}

// SerializeUIActionResult encodes an action result to JSON. An absent
// MessageID is emitted as an explicit "messageId": null so presence survives
// the serialization boundary.
func SerializeUIActionResult(r UIActionResult) ([]byte, error) {
	return json.Marshal(r)
}

// requiredPayloadFields maps each action type to the payload fields its
// variant requires. Values may be empty strings; only presence is checked.
var requiredPayloadFields = map[UIActionType][]string{
	UIActionTool:   {"toolName", "params"},
	UIActionPrompt: {"prompt"},
	UIActionLink:   {"url"},
	UIActionIntent: {"intent", "params"},
	UIActionNotify: {"message"},
}

// DeserializeUIActionResult reconstructs an action result from JSON. The
// type discriminator is read first, then the payload is validated against
// the matching variant's required fields. Malformed JSON, an unknown type,
// or a missing payload field fails with a DeserializationError.
func DeserializeUIActionResult(data []byte) (UIActionResult, error) {
	if !gjson.ValidBytes(data) {
		return nil, &DeserializationError{Reason: "invalid JSON"}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() || !doc.Get("type").Exists() || !doc.Get("payload").Exists() {
		return nil, &DeserializationError{Reason: "invalid UI action result format"}
	}

	tag := UIActionType(doc.Get("type").String())
	var result UIActionResult
	switch tag {
	case UIActionTool:
		result = &UIActionResultToolCall{}
	case UIActionPrompt:
		result = &UIActionResultPrompt{}
	case UIActionLink:
		result = &UIActionResultLink{}
	case UIActionIntent:
		result = &UIActionResultIntent{}
	case UIActionNotify:
		result = &UIActionResultNotification{}
	default:
		return nil, &DeserializationError{Reason: fmt.Sprintf("invalid action type: %s", tag)}
	}

	for _, field := range requiredPayloadFields[tag] {
		if !doc.Get("payload." + field).Exists() {
			return nil, &DeserializationError{
				Reason: fmt.Sprintf("payload missing required field %q for type %q", field, tag),
			}
		}
	}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, &DeserializationError{Reason: err.Error()}
	}
	return result, nil
}
