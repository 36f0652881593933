package turnnode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
	promptx "github.com/kritsada/helpdesk-agent/agent/prompt"
)

// TechnicalTurn grounds the technical agent with retrieved documentation
// before completing. Retrieval failures degrade to an empty snippet set so
// the prompt assembly renders the no-documentation line itself.
func TechnicalTurn(
	ctx context.Context,
	in *GraphState,
	docs contractx.ContextProvider,
	llm contractx.CompletionClient,
	prompts promptx.PromptSet,
) (*GraphState, error) {
	snippets, err := docs.Retrieve(ctx, in.Session.LastUserContent())
	if err != nil {
		log.Warn().Err(err).Str("session_id", in.SessionID).Msg("context retrieval failed, answering without documentation")
		snippets = nil
	}
	in.Snippets = snippets

	return completeWith(ctx, in, llm, prompts.TechnicalPrompt(snippets), nil)
}

// BillingTurn completes with the static billing policy context and the
// declared tool schemas. Declaring the tools is mandatory on this path.
func BillingTurn(
	ctx context.Context,
	in *GraphState,
	llm contractx.CompletionClient,
	prompts promptx.PromptSet,
	policy string,
	tools contractx.ToolGateway,
) (*GraphState, error) {
	return completeWith(ctx, in, llm, prompts.BillingPrompt(policy), tools.Schemas())
}

// GeneralTurn handles everything the classifier marked as OTHER: no
// retrieval, no tools.
func GeneralTurn(
	ctx context.Context,
	in *GraphState,
	llm contractx.CompletionClient,
	prompts promptx.PromptSet,
) (*GraphState, error) {
	return completeWith(ctx, in, llm, prompts.GeneralPrompt(), nil)
}

func completeWith(
	ctx context.Context,
	in *GraphState,
	llm contractx.CompletionClient,
	systemPrompt string,
	tools []contractx.ToolSchema,
) (*GraphState, error) {
	turns := withSystemTurn(systemPrompt, in.Session.Snapshot())

	result, err := llm.Complete(ctx, turns, tools)
	if err != nil {
		// The client maps transport failures itself; an error here is a
		// programming-level fault, still turned into caller-visible text.
		result = contractx.TextResult(fmt.Sprintf("CONNECTION ERROR: %v", err))
	}
	in.Result = result
	return in, nil
}
