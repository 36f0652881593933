package knowledge

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

const (
	// Scores below this similarity do not clear the relevance bar.
	defaultThreshold = 0.35
	// Cap on returned snippets to bound prompt size.
	defaultTopK = 2
)

// Embedder turns text into a dense vector. The concrete implementation
// lives behind the completion service boundary.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// VectorProvider retrieves snippets by cosine similarity between the query
// embedding and precomputed document embeddings. The document vectors are
// computed once at construction and read-only afterwards.
type VectorProvider struct {
	embedder  Embedder
	corpus    []Document
	vectors   [][]float64
	threshold float64
	topK      int
}

// VectorOption customizes a VectorProvider.
type VectorOption func(*VectorProvider)

func WithThreshold(threshold float64) VectorOption {
	return func(p *VectorProvider) {
		p.threshold = threshold
	}
}

func WithTopK(k int) VectorOption {
	return func(p *VectorProvider) {
		if k > 0 {
			p.topK = k
		}
	}
}

func NewVectorProvider(ctx context.Context, embedder Embedder, corpus []Document, opts ...VectorOption) (*VectorProvider, error) {
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", contractx.ErrValidation)
	}

	p := &VectorProvider{
		embedder:  embedder,
		corpus:    corpus,
		threshold: defaultThreshold,
		topK:      defaultTopK,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	p.vectors = make([][]float64, 0, len(corpus))
	for _, doc := range corpus {
		vec, err := embedder.Embed(ctx, doc.Text)
		if err != nil {
			return nil, fmt.Errorf("embed corpus document %q: %w", doc.Key, err)
		}
		p.vectors = append(p.vectors, vec)
	}

	return p, nil
}

func (p *VectorProvider) Retrieve(ctx context.Context, query string) ([]contractx.Snippet, error) {
	queryVec, err := p.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(queryVec) == 0 {
		return nil, nil
	}

	type scored struct {
		index int
		score float64
	}

	ranked := make([]scored, 0, len(p.corpus))
	for i := range p.corpus {
		score := cosineSimilarity(queryVec, p.vectors[i])
		if score > p.threshold {
			ranked = append(ranked, scored{index: i, score: score})
		}
	}

	// Stable sort keeps corpus insertion order for equal scores.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	if len(ranked) > p.topK {
		ranked = ranked[:p.topK]
	}

	snippets := make([]contractx.Snippet, 0, len(ranked))
	for _, r := range ranked {
		snippets = append(snippets, contractx.Snippet(p.corpus[r.index].Text))
	}
	return snippets, nil
}

// cosineSimilarity computes (A · B) / (||A|| * ||B||), or 0 when either
// vector is degenerate.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := floats.Dot(a, b) / (normA * normB)
	if math.IsNaN(sim) {
		return 0
	}
	return sim
}
