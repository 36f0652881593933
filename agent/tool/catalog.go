package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

// Registry is the fixed set of tools an agent may declare. Adding a tool
// means registering one executor; routing never changes.
type Registry struct {
	schemas   []contractx.ToolSchema
	executors map[string]contractx.ToolExecutor
}

var _ contractx.ToolGateway = (*Registry)(nil)

// NewRegistry declares the given executors under their schemas. Schema and
// executor names must line up one-to-one.
func NewRegistry(schemas []contractx.ToolSchema, executors ...contractx.ToolExecutor) (*Registry, error) {
	byName := make(map[string]contractx.ToolExecutor, len(executors))
	for _, exec := range executors {
		name := strings.TrimSpace(exec.Name())
		if name == "" {
			return nil, fmt.Errorf("%w: executor has empty name", contractx.ErrValidation)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate executor %q", contractx.ErrValidation, name)
		}
		byName[name] = exec
	}

	for _, schema := range schemas {
		if _, ok := byName[schema.Name]; !ok {
			return nil, fmt.Errorf("%w: schema %q has no executor", contractx.ErrValidation, schema.Name)
		}
	}

	return &Registry{schemas: schemas, executors: byName}, nil
}

// Schemas returns the declared tool schemas, in registration order.
func (r *Registry) Schemas() []contractx.ToolSchema {
	out := make([]contractx.ToolSchema, len(r.schemas))
	copy(out, r.schemas)
	return out
}

// Execute runs the executor behind the invocation. Names outside the
// declared set fail with ErrUnknownTool and run nothing.
func (r *Registry) Execute(ctx context.Context, inv contractx.ToolInvocation) (string, error) {
	exec, ok := r.executors[strings.TrimSpace(inv.Name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", contractx.ErrUnknownTool, inv.Name)
	}
	return exec.Invoke(ctx, inv.Argument)
}

// RefundSchema declares the refund initiation tool for the billing agent.
func RefundSchema(name string) contractx.ToolSchema {
	return contractx.ToolSchema{
		Name:        name,
		Description: "Starts the refund process for the user.",
		Parameters: []contractx.ToolParam{
			{Name: "reason", Description: "Customer's reason for the refund.", Required: true},
		},
	}
}
