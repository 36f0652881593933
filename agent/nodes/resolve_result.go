package turnnode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

// ResolveResult turns the completion result into the reply and records it
// in the history. A recognized tool call executes exactly once and its
// human-readable result replaces any model text; an unrecognized name
// executes nothing and is surfaced as plain text. Empty model text becomes
// the fixed fallback so the stored history never holds an empty turn.
func ResolveResult(ctx context.Context, in *GraphState, tools contractx.ToolGateway) (*GraphState, error) {
	in.Reply = resolveReply(ctx, in, tools)
	in.Session.Append(contractx.AssistantTurn(in.Reply))
	return in, nil
}

func resolveReply(ctx context.Context, in *GraphState, tools contractx.ToolGateway) string {
	inv, isToolCall := in.Result.ToolCall()
	if !isToolCall {
		text := strings.TrimSpace(in.Result.Text())
		if text == "" {
			return FallbackReply
		}
		return text
	}

	out, err := tools.Execute(ctx, inv)
	switch {
	case errors.Is(err, contractx.ErrUnknownTool):
		log.Warn().Str("session_id", in.SessionID).Str("tool", inv.Name).Msg("model requested an undeclared tool")
		return fmt.Sprintf("The assistant requested an unknown action %q. No action was taken.", inv.Name)
	case err != nil:
		log.Error().Err(err).Str("session_id", in.SessionID).Str("tool", inv.Name).Msg("tool execution failed")
		return fmt.Sprintf("The %s action could not be completed: %v", inv.Name, err)
	default:
		return out
	}
}

// FinalizeReply hands the reply back to the caller. The returned text is
// always non-empty.
func FinalizeReply(in *GraphState) (GraphOutput, error) {
	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		reply = FallbackReply
	}
	return GraphOutput{Reply: reply}, nil
}
