package contract

import "context"

// CompletionClient talks to the external completion service. Implementations
// must not mutate the input turns and must map transport failures and
// malformed payloads to a text-variant CompletionResult carrying a
// diagnostic, rather than returning an error. The error return exists for
// programming mistakes (nil client, cancelled context); the orchestrator
// still recovers it into caller-visible text.
type CompletionClient interface {
	Complete(ctx context.Context, turns []Turn, tools []ToolSchema) (CompletionResult, error)
}

// ContextProvider retrieves grounding snippets for a query. An empty result
// means "nothing relevant", never an error; the two strategies (keyword
// index, vector similarity) are interchangeable behind this interface.
type ContextProvider interface {
	Retrieve(ctx context.Context, query string) ([]Snippet, error)
}

// ToolGateway owns the fixed set of declared tools: their schemas and the
// executors behind them. Execute must reject names outside the declared set
// with ErrUnknownTool and must never run an executor for such a name.
type ToolGateway interface {
	Schemas() []ToolSchema
	Execute(ctx context.Context, inv ToolInvocation) (string, error)
}

// ToolExecutor performs the side effect behind one declared tool and
// returns a human-readable result.
type ToolExecutor interface {
	Name() string
	Invoke(ctx context.Context, argument string) (string, error)
}
