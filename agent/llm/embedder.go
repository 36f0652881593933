package llm

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
	knowledgex "github.com/kritsada/helpdesk-agent/agent/knowledge"
)

// OpenAIEmbedder produces embeddings through the OpenAI-compatible gateway.
type OpenAIEmbedder struct {
	client *openaisdk.Client
	model  string
}

var _ knowledgex.Embedder = (*OpenAIEmbedder)(nil)

func NewOpenAIEmbedder(client *openaisdk.Client, model string) (*OpenAIEmbedder, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: embedding client is required", contractx.ErrValidation)
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, fmt.Errorf("%w: embedding model is required", contractx.ErrValidation)
	}
	return &OpenAIEmbedder{client: client, model: model}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.Embeddings.New(ctx, openaisdk.EmbeddingNewParams{
		Model: openaisdk.EmbeddingModel(e.model),
		Input: openaisdk.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: embedding response has no data", contractx.ErrSchemaViolation)
	}
	return resp.Data[0].Embedding, nil
}
