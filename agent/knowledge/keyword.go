package knowledge

import (
	"context"
	"strings"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

// keywordEntry maps domain vocabulary onto one corpus document.
type keywordEntry struct {
	key      string
	keywords []string
}

// KeywordProvider retrieves snippets by scanning the query for known
// terminology. Deterministic for a fixed corpus and query: entries are
// evaluated in corpus insertion order and results keep that order.
type KeywordProvider struct {
	docs  map[string]string
	index []keywordEntry
	maxK  int
}

func NewKeywordProvider(corpus []Document) *KeywordProvider {
	docs := make(map[string]string, len(corpus))
	for _, doc := range corpus {
		docs[doc.Key] = doc.Text
	}

	return &KeywordProvider{
		docs: docs,
		index: []keywordEntry{
			{key: "error", keywords: []string{"error", "404", "501", "failure", "code", "database", "sync", "offline"}},
			{key: "specs", keywords: []string{"specs", "range", "distance", "zigbee", "meters", "battery", "power", "cr2032", "life"}},
			{key: "setup", keywords: []string{"setup", "install", "led", "flashing", "blue", "mobile app", "pair", "pairing", "button", "connect"}},
			{key: "api", keywords: []string{"api", "token", "auth", "integration", "bearer", "webhook", "endpoint", "payload"}},
		},
		maxK: defaultTopK,
	}
}

func (p *KeywordProvider) Retrieve(_ context.Context, query string) ([]contractx.Snippet, error) {
	queryLower := strings.ToLower(query)

	var snippets []contractx.Snippet
	for _, entry := range p.index {
		if len(snippets) >= p.maxK {
			break
		}
		for _, keyword := range entry.keywords {
			if !strings.Contains(queryLower, keyword) {
				continue
			}
			if text, ok := p.docs[entry.key]; ok {
				snippets = append(snippets, contractx.Snippet(text))
			}
			break
		}
	}
	return snippets, nil
}
