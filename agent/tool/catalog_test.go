package tool

import (
	"context"
	"errors"
	"strings"
	"testing"

	billingx "github.com/kritsada/helpdesk-agent/agent/billing"
	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

type spyExecutor struct {
	name  string
	out   string
	err   error
	calls int
	args  []string
}

func (s *spyExecutor) Name() string {
	return s.name
}

func (s *spyExecutor) Invoke(_ context.Context, argument string) (string, error) {
	s.calls++
	s.args = append(s.args, argument)
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func TestRegistrySchemas(t *testing.T) {
	t.Parallel()

	exec := &spyExecutor{name: billingx.ToolInitiateRefund}
	registry, err := NewRegistry([]contractx.ToolSchema{RefundSchema(exec.name)}, exec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	schemas := registry.Schemas()
	if len(schemas) != 1 {
		t.Fatalf("expected 1 schema, got %d", len(schemas))
	}
	if schemas[0].Name != billingx.ToolInitiateRefund {
		t.Fatalf("unexpected schema name: %s", schemas[0].Name)
	}
	if len(schemas[0].Parameters) != 1 || schemas[0].Parameters[0].Name != "reason" || !schemas[0].Parameters[0].Required {
		t.Fatalf("refund schema must require a reason parameter: %+v", schemas[0].Parameters)
	}
}

func TestRegistryExecuteDispatches(t *testing.T) {
	t.Parallel()

	exec := &spyExecutor{name: billingx.ToolInitiateRefund, out: "ticket opened"}
	registry, err := NewRegistry([]contractx.ToolSchema{RefundSchema(exec.name)}, exec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := registry.Execute(context.Background(), contractx.ToolInvocation{
		Name:     billingx.ToolInitiateRefund,
		Argument: "purchased 3 days ago",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ticket opened" {
		t.Fatalf("unexpected output: %q", out)
	}
	if exec.calls != 1 || exec.args[0] != "purchased 3 days ago" {
		t.Fatalf("unexpected executor calls: %d args=%v", exec.calls, exec.args)
	}
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	t.Parallel()

	exec := &spyExecutor{name: billingx.ToolInitiateRefund}
	registry, err := NewRegistry([]contractx.ToolSchema{RefundSchema(exec.name)}, exec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = registry.Execute(context.Background(), contractx.ToolInvocation{Name: "deleteAccount"})
	if !errors.Is(err, contractx.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
	if exec.calls != 0 {
		t.Fatal("executor must not run for an unknown tool name")
	}
}

func TestRegistryRejectsSchemaWithoutExecutor(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry([]contractx.ToolSchema{RefundSchema("initiateRefund")})
	if err == nil || !strings.Contains(err.Error(), "no executor") {
		t.Fatalf("expected wiring error, got %v", err)
	}
}

func TestRegistryWithRefundDesk(t *testing.T) {
	t.Parallel()

	desk := billingx.NewRefundDesk()
	registry, err := NewRegistry([]contractx.ToolSchema{RefundSchema(desk.Name())}, desk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := registry.Execute(context.Background(), contractx.ToolInvocation{
		Name:     billingx.ToolInitiateRefund,
		Argument: "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, billingx.PlaceholderReason) {
		t.Fatalf("expected placeholder reason, got %q", out)
	}
}
