package turnnode

import (
	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
	conversationx "github.com/kritsada/helpdesk-agent/agent/conversation"
)

// FallbackReply replaces an empty model output so the stored history never
// contains an empty turn and the caller always receives text.
const FallbackReply = "Sorry, I could not process that request. Please try again."

// GraphInput is the caller-facing request for one conversational turn.
type GraphInput struct {
	SessionID string
	Text      string
}

// GraphOutput is the caller-facing reply.
type GraphOutput struct {
	Reply string
}

// GraphState is threaded through the turn-handling pipeline.
type GraphState struct {
	SessionID string
	Text      string

	Session  *conversationx.Session
	Intent   contractx.Intent
	Snippets []contractx.Snippet
	Result   contractx.CompletionResult
	Reply    string
}
