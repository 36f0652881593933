package knowledge

import (
	"context"
	"strings"
	"testing"
)

func TestKeywordRetrieveErrorCode(t *testing.T) {
	t.Parallel()

	provider := NewKeywordProvider(DefaultCorpus())

	snippets, err := provider.Retrieve(context.Background(), "I have a 404 error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("expected 1 snippet, got %d", len(snippets))
	}
	if !strings.Contains(string(snippets[0]), "Reset") {
		t.Fatalf("expected troubleshooting snippet, got %q", snippets[0])
	}
	for _, s := range snippets {
		if strings.Contains(string(s), "PLN") {
			t.Fatalf("billing content leaked into technical retrieval: %q", s)
		}
	}
}

func TestKeywordRetrieveOutOfDomain(t *testing.T) {
	t.Parallel()

	provider := NewKeywordProvider(DefaultCorpus())

	snippets, err := provider.Retrieve(context.Background(), "what is the meaning of life")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 0 {
		t.Fatalf("expected no snippets for out-of-domain query, got %d", len(snippets))
	}
}

func TestKeywordRetrieveDeduplicatesAndCaps(t *testing.T) {
	t.Parallel()

	provider := NewKeywordProvider(DefaultCorpus())

	// "error", "battery" and "pairing" each hit a different document; the
	// result is capped at the fixed K in corpus order.
	snippets, err := provider.Retrieve(context.Background(), "error with battery while pairing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("expected capped result of 2 snippets, got %d", len(snippets))
	}
	if !strings.Contains(string(snippets[0]), "Error Code 404") {
		t.Fatalf("expected error doc first, got %q", snippets[0])
	}
	if !strings.Contains(string(snippets[1]), "CR2032") {
		t.Fatalf("expected hardware doc second, got %q", snippets[1])
	}
}

func TestKeywordRetrieveIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	provider := NewKeywordProvider(DefaultCorpus())

	snippets, err := provider.Retrieve(context.Background(), "WEBHOOK configuration")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 1 || !strings.Contains(string(snippets[0]), "/v2/webhooks") {
		t.Fatalf("expected api doc, got %v", snippets)
	}
}
