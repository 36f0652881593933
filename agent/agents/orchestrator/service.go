package orchestrator

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/eino/compose"

	billingx "github.com/kritsada/helpdesk-agent/agent/billing"
	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
	conversationx "github.com/kritsada/helpdesk-agent/agent/conversation"
	turnnode "github.com/kritsada/helpdesk-agent/agent/nodes"
	promptx "github.com/kritsada/helpdesk-agent/agent/prompt"
)

// Orchestrator owns the conversation state and routes each user turn to
// the right agent: classification, prompt assembly, completion, and
// tool-call interception all happen inside one compiled pipeline.
type Orchestrator struct {
	store   conversationx.Store
	llm     contractx.CompletionClient
	docs    contractx.ContextProvider
	tools   contractx.ToolGateway
	prompts promptx.PromptSet
	policy  string

	graphRunner compose.Runnable[turnnode.GraphInput, turnnode.GraphOutput]
}

// Config carries the optional knobs; zero value picks the defaults.
type Config struct {
	// BillingPolicy overrides the built-in policy context.
	BillingPolicy string
}

func New(
	store conversationx.Store,
	llm contractx.CompletionClient,
	docs contractx.ContextProvider,
	tools contractx.ToolGateway,
	cfg Config,
) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("conversation store is required")
	}
	if llm == nil {
		return nil, errors.New("completion client is required")
	}
	if docs == nil {
		return nil, errors.New("context provider is required")
	}
	if tools == nil {
		return nil, errors.New("tool gateway is required")
	}

	policy := strings.TrimSpace(cfg.BillingPolicy)
	if policy == "" {
		policy = billingx.PolicyContext()
	}

	o := &Orchestrator{
		store:   store,
		llm:     llm,
		docs:    docs,
		tools:   tools,
		prompts: promptx.LoadPromptSet(),
		policy:  policy,
	}

	graphRunner, err := o.compileHandleTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleTurn processes one user turn for the given session and returns the
// reply. Per call the session history grows by exactly two turns (the user
// turn and the response turn), at most one tool executes, and the returned
// text is never empty. Calls for the same session must not interleave.
func (o *Orchestrator) HandleTurn(ctx context.Context, sessionID string, text string) (string, error) {
	out, err := o.graphRunner.Invoke(ctx, turnnode.GraphInput{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}

// History returns a copy of the visible transcript for a session.
func (o *Orchestrator) History(sessionID string) ([]contractx.Turn, error) {
	session, err := o.store.LoadOrCreate(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}
