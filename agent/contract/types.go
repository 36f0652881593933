package contract

import "strings"

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a conversation. Immutable once created.
// System turns are ephemeral prompt scaffolding and are never persisted
// into a session history.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func SystemTurn(content string) Turn {
	return Turn{Role: RoleSystem, Content: content}
}

func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

// Intent is the routing label produced by classification.
type Intent string

const (
	IntentTechnical Intent = "TECHNICAL"
	IntentBilling   Intent = "BILLING"
	IntentGeneral   Intent = "OTHER"
)

// NormalizeIntent maps a raw classifier label to a routing intent.
// Matching is case-insensitive; anything unrecognized falls back to
// IntentTechnical because the technical path never performs a
// side-effecting action.
func NormalizeIntent(label string) Intent {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	switch {
	case strings.Contains(normalized, string(IntentBilling)):
		return IntentBilling
	case strings.Contains(normalized, string(IntentGeneral)) || strings.Contains(normalized, "GENERAL"):
		return IntentGeneral
	default:
		return IntentTechnical
	}
}

// ToolInvocation is a structured request from the model to run a tool.
type ToolInvocation struct {
	Name     string `json:"name"`
	Argument string `json:"argument"`
}

// CompletionResult is a two-variant union: generated text or a tool
// invocation, never both. Use the constructors so the invalid states
// (both set, both empty) stay unrepresentable.
type CompletionResult struct {
	text     string
	toolCall *ToolInvocation
}

func TextResult(text string) CompletionResult {
	return CompletionResult{text: text}
}

func ToolCallResult(inv ToolInvocation) CompletionResult {
	return CompletionResult{toolCall: &inv}
}

func (r CompletionResult) IsToolCall() bool {
	return r.toolCall != nil
}

func (r CompletionResult) Text() string {
	return r.text
}

// ToolCall returns the invocation for the tool-call variant. The boolean
// is false for the text variant.
func (r CompletionResult) ToolCall() (ToolInvocation, bool) {
	if r.toolCall == nil {
		return ToolInvocation{}, false
	}
	return *r.toolCall, true
}

// Snippet is an immutable fragment of retrieved documentation used as
// grounding context for an answer.
type Snippet string

// ToolParam describes one argument of a declared tool. All tool
// arguments in this system are strings.
type ToolParam struct {
	Name        string
	Description string
	Required    bool
}

// ToolSchema is the wire-neutral declaration of a callable tool.
type ToolSchema struct {
	Name        string
	Description string
	Parameters  []ToolParam
}
