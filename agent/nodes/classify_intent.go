package turnnode

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

// ClassifyIntent asks the model for a routing label over the full history.
// Intent can be clarified across turns, so the whole transcript is the
// classification context, not just the latest message. Any failure or
// unrecognized label falls back to the technical path, which never
// performs a side-effecting action.
func ClassifyIntent(
	ctx context.Context,
	in *GraphState,
	llm contractx.CompletionClient,
	classifierPrompt string,
) (*GraphState, error) {
	turns := withSystemTurn(classifierPrompt, in.Session.Snapshot())

	result, err := llm.Complete(ctx, turns, nil)

	label := ""
	switch {
	case err != nil:
		log.Warn().Err(err).Str("session_id", in.SessionID).Msg("intent classification failed, defaulting route")
	case result.IsToolCall():
		log.Warn().Str("session_id", in.SessionID).Msg("classifier returned a tool call, defaulting route")
	default:
		label = result.Text()
	}

	in.Intent = contractx.NormalizeIntent(label)
	log.Debug().Str("session_id", in.SessionID).Str("intent", string(in.Intent)).Msg("turn routed")
	return in, nil
}

// withSystemTurn prepends the ephemeral system turn to a history snapshot.
// The system turn is never persisted.
func withSystemTurn(systemPrompt string, history []contractx.Turn) []contractx.Turn {
	turns := make([]contractx.Turn, 0, len(history)+1)
	turns = append(turns, contractx.SystemTurn(systemPrompt))
	turns = append(turns, history...)
	return turns
}
