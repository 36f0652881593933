package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

// Client implements contract.CompletionClient over an eino chat model.
// Transport failures and malformed payloads come back as text-variant
// results carrying a diagnostic; they never escape as errors.
type Client struct {
	model einomodel.ToolCallingChatModel
}

var _ contractx.CompletionClient = (*Client)(nil)

func NewClient(model einomodel.ToolCallingChatModel) (*Client, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	return &Client{model: model}, nil
}

func (c *Client) Complete(ctx context.Context, turns []contractx.Turn, tools []contractx.ToolSchema) (contractx.CompletionResult, error) {
	messages := toMessages(turns)

	chatModel := c.model
	if len(tools) > 0 {
		bound, err := c.model.WithTools(toToolInfos(tools))
		if err != nil {
			return contractx.TextResult(fmt.Sprintf("API ERROR: could not declare tools: %v", err)), nil
		}
		chatModel = bound
	}

	msg, err := chatModel.Generate(ctx, messages)
	if err != nil {
		return contractx.TextResult(fmt.Sprintf("CONNECTION ERROR: %v", err)), nil
	}
	if msg == nil {
		return contractx.TextResult("RESPONSE ERROR: no candidates returned from model."), nil
	}

	if len(msg.ToolCalls) > 0 {
		call := msg.ToolCalls[0]
		name := strings.TrimSpace(call.Function.Name)
		if name == "" {
			return contractx.TextResult("RESPONSE ERROR: tool call without a name."), nil
		}
		return contractx.ToolCallResult(contractx.ToolInvocation{
			Name:     name,
			Argument: extractArgument(call.Function.Arguments),
		}), nil
	}

	return contractx.TextResult(msg.Content), nil
}

// toMessages maps conversation roles onto the provider vocabulary without
// mutating the input.
func toMessages(turns []contractx.Turn) []*schema.Message {
	messages := make([]*schema.Message, 0, len(turns))
	for _, turn := range turns {
		var role schema.RoleType
		switch turn.Role {
		case contractx.RoleSystem:
			role = schema.System
		case contractx.RoleAssistant:
			role = schema.Assistant
		default:
			role = schema.User
		}
		messages = append(messages, &schema.Message{
			Role:    role,
			Content: turn.Content,
		})
	}
	return messages
}

func toToolInfos(tools []contractx.ToolSchema) []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		params := make(map[string]*schema.ParameterInfo, len(t.Parameters))
		for _, p := range t.Parameters {
			params[p.Name] = &schema.ParameterInfo{
				Type:     schema.String,
				Desc:     p.Description,
				Required: p.Required,
			}
		}
		infos = append(infos, &schema.ToolInfo{
			Name:        t.Name,
			Desc:        t.Description,
			ParamsOneOf: schema.NewParamsOneOfByParams(params),
		})
	}
	return infos
}

// extractArgument pulls the single string argument out of the model's raw
// JSON arguments. The declared tools all take exactly one string parameter;
// anything unexpected falls through as the raw payload so the executor can
// still surface it.
func extractArgument(rawArgs string) string {
	rawArgs = strings.TrimSpace(rawArgs)
	if rawArgs == "" {
		return ""
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		return rawArgs
	}
	if reason, ok := args["reason"].(string); ok {
		return reason
	}
	if len(args) == 1 {
		for _, v := range args {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return rawArgs
}
