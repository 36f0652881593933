package prompt

import (
	"strings"

	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
)

// NoDocumentationFound is rendered into the technical prompt when the
// retrieval step returns zero snippets, so retrieval strategies never have
// to phrase the absence themselves.
const NoDocumentationFound = "No specific documentation found for this query. Ask the user for more technical details or an error code."

// NoInformationReply is the fixed phrase the technical agent is instructed
// to return when the supplied documentation does not answer the question.
const NoInformationReply = "I'm sorry, I don't have information on this in my records."

// Technical assembles the technical agent's system prompt with the
// retrieved snippets embedded verbatim.
func (p PromptSet) TechnicalPrompt(snippets []contractx.Snippet) string {
	return strings.ReplaceAll(p.Technical, "{documentation}", renderSnippets(snippets))
}

// BillingPrompt assembles the billing agent's system prompt around the
// static policy context.
func (p PromptSet) BillingPrompt(policy string) string {
	return strings.ReplaceAll(p.Billing, "{policy}", strings.TrimSpace(policy))
}

func (p PromptSet) GeneralPrompt() string {
	return p.General
}

func (p PromptSet) ClassifierPrompt() string {
	return p.Classifier
}

func renderSnippets(snippets []contractx.Snippet) string {
	if len(snippets) == 0 {
		return NoDocumentationFound
	}

	var b strings.Builder
	for i, snippet := range snippets {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(string(snippet))
	}
	return b.String()
}
