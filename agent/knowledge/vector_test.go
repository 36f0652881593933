package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeEmbedder returns canned vectors per input text, with a default for
// anything unlisted.
type fakeEmbedder struct {
	vectors    map[string][]float64
	defaultVec []float64
	err        error
	calls      int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return f.defaultVec, nil
}

func testCorpus() []Document {
	return []Document{
		{Key: "error", Text: "Error Code 404: press Reset for 5s"},
		{Key: "specs", Text: "Battery: CR2032 with 3-year life"},
		{Key: "setup", Text: "Hold the Pair button until the LED flashes blue"},
	}
}

func TestVectorRetrieveRanksBySimilarity(t *testing.T) {
	t.Parallel()

	corpus := testCorpus()
	embedder := &fakeEmbedder{
		vectors: map[string][]float64{
			corpus[0].Text:  {1, 0, 0},
			corpus[1].Text:  {0.9, 0.1, 0},
			corpus[2].Text:  {0, 0, 1},
			"battery query": {0.8, 0.2, 0},
		},
		defaultVec: []float64{0, 1, 0},
	}

	provider, err := NewVectorProvider(context.Background(), embedder, corpus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snippets, err := provider.Retrieve(context.Background(), "battery query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("expected top-2 snippets, got %d", len(snippets))
	}
	if !strings.Contains(string(snippets[0]), "CR2032") {
		t.Fatalf("expected battery doc ranked first, got %q", snippets[0])
	}
	if !strings.Contains(string(snippets[1]), "404") {
		t.Fatalf("expected error doc ranked second, got %q", snippets[1])
	}
}

func TestVectorRetrieveBelowThreshold(t *testing.T) {
	t.Parallel()

	corpus := testCorpus()
	embedder := &fakeEmbedder{
		vectors: map[string][]float64{
			corpus[0].Text:    {1, 0, 0},
			corpus[1].Text:    {1, 0, 0},
			corpus[2].Text:    {1, 0, 0},
			"unrelated topic": {-1, 0, 0},
		},
		defaultVec: []float64{1, 0, 0},
	}

	provider, err := NewVectorProvider(context.Background(), embedder, corpus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snippets, err := provider.Retrieve(context.Background(), "unrelated topic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 0 {
		t.Fatalf("expected empty result below threshold, got %v", snippets)
	}
}

func TestVectorRetrieveTieKeepsCorpusOrder(t *testing.T) {
	t.Parallel()

	corpus := testCorpus()
	same := []float64{1, 0, 0}
	embedder := &fakeEmbedder{
		vectors: map[string][]float64{
			corpus[0].Text: same,
			corpus[1].Text: same,
			corpus[2].Text: same,
		},
		defaultVec: same,
	}

	provider, err := NewVectorProvider(context.Background(), embedder, corpus, WithTopK(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snippets, err := provider.Retrieve(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 3 {
		t.Fatalf("expected all 3 snippets, got %d", len(snippets))
	}
	if !strings.Contains(string(snippets[0]), "404") || !strings.Contains(string(snippets[2]), "LED") {
		t.Fatalf("tie broke corpus order: %v", snippets)
	}
}

func TestVectorProviderEmbedsCorpusOnce(t *testing.T) {
	t.Parallel()

	corpus := testCorpus()
	embedder := &fakeEmbedder{defaultVec: []float64{1, 0, 0}}

	if _, err := NewVectorProvider(context.Background(), embedder, corpus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embedder.calls != len(corpus) {
		t.Fatalf("expected %d corpus embeddings, got %d", len(corpus), embedder.calls)
	}
}

func TestVectorRetrievePropagatesEmbedFailure(t *testing.T) {
	t.Parallel()

	corpus := testCorpus()
	embedder := &fakeEmbedder{defaultVec: []float64{1, 0, 0}}
	provider, err := NewVectorProvider(context.Background(), embedder, corpus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	embedder.err = errors.New("embedding endpoint unreachable")
	if _, err := provider.Retrieve(context.Background(), "anything"); err == nil {
		t.Fatal("expected error from failed embedding")
	}
}
