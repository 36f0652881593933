package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
	turnnode "github.com/kritsada/helpdesk-agent/agent/nodes"
)

func (o *Orchestrator) compileHandleTurnGraph(
	ctx context.Context,
) (compose.Runnable[turnnode.GraphInput, turnnode.GraphOutput], error) {
	graph := compose.NewGraph[turnnode.GraphInput, turnnode.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in turnnode.GraphInput) (*turnnode.GraphState, error) {
			return turnnode.ValidateRequest(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("load_session",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.LoadSession(in, o.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node load_session: %w", err)
	}

	if err := graph.AddLambdaNode("append_user_turn",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.AppendUserTurn(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node append_user_turn: %w", err)
	}

	if err := graph.AddLambdaNode("classify_intent",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.ClassifyIntent(ctx, in, o.llm, o.prompts.ClassifierPrompt())
		}),
	); err != nil {
		return nil, fmt.Errorf("add node classify_intent: %w", err)
	}

	if err := graph.AddLambdaNode("technical_agent",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.TechnicalTurn(ctx, in, o.docs, o.llm, o.prompts)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node technical_agent: %w", err)
	}

	if err := graph.AddLambdaNode("billing_agent",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.BillingTurn(ctx, in, o.llm, o.prompts, o.policy, o.tools)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node billing_agent: %w", err)
	}

	if err := graph.AddLambdaNode("general_agent",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.GeneralTurn(ctx, in, o.llm, o.prompts)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node general_agent: %w", err)
	}

	if err := graph.AddLambdaNode("resolve_result",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.ResolveResult(ctx, in, o.tools)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node resolve_result: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (turnnode.GraphOutput, error) {
			return turnnode.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *turnnode.GraphState) (string, error) {
			switch in.Intent {
			case contractx.IntentBilling:
				return "billing_agent", nil
			case contractx.IntentGeneral:
				return "general_agent", nil
			default:
				return "technical_agent", nil
			}
		},
		map[string]bool{
			"technical_agent": true,
			"billing_agent":   true,
			"general_agent":   true,
		},
	)
	if err := graph.AddBranch("classify_intent", branch); err != nil {
		return nil, fmt.Errorf("add routing branch: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "load_session"},
		{"load_session", "append_user_turn"},
		{"append_user_turn", "classify_intent"},
		{"technical_agent", "resolve_result"},
		{"billing_agent", "resolve_result"},
		{"general_agent", "resolve_result"},
		{"resolve_result", "finalize_reply"},
		{"finalize_reply", compose.END},
	}
	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.handle_turn"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}
