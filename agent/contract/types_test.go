package contract

import "testing"

func TestNormalizeIntent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  Intent
	}{
		{"TECHNICAL", IntentTechnical},
		{"technical", IntentTechnical},
		{"BILLING", IntentBilling},
		{"billing", IntentBilling},
		{"BiLLiNg", IntentBilling},
		{"  BILLING.  ", IntentBilling},
		{"OTHER", IntentGeneral},
		{"general", IntentGeneral},
		{"", IntentTechnical},
		{"no idea", IntentTechnical},
		{"I think the intent is BILLING", IntentBilling},
	}

	for _, tc := range cases {
		if got := NormalizeIntent(tc.label); got != tc.want {
			t.Fatalf("NormalizeIntent(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestCompletionResultVariants(t *testing.T) {
	t.Parallel()

	text := TextResult("hello")
	if text.IsToolCall() {
		t.Fatal("text variant must not be a tool call")
	}
	if _, ok := text.ToolCall(); ok {
		t.Fatal("text variant must not expose an invocation")
	}
	if text.Text() != "hello" {
		t.Fatalf("unexpected text: %q", text.Text())
	}

	call := ToolCallResult(ToolInvocation{Name: "initiateRefund", Argument: "late delivery"})
	if !call.IsToolCall() {
		t.Fatal("tool-call variant must report itself")
	}
	inv, ok := call.ToolCall()
	if !ok || inv.Name != "initiateRefund" || inv.Argument != "late delivery" {
		t.Fatalf("unexpected invocation: %+v ok=%v", inv, ok)
	}
	if call.Text() != "" {
		t.Fatal("tool-call variant must not carry text")
	}
}
