package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/classifier.txt
	classifierRaw string

	//go:embed template/technical.txt
	technicalRaw string

	//go:embed template/billing.txt
	billingRaw string

	//go:embed template/general.txt
	generalRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Classifier string
	Technical  string
	Billing    string
	General    string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// Safe to call concurrently; the embed is compile-time and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Classifier: strings.TrimSpace(classifierRaw),
		Technical:  strings.TrimSpace(technicalRaw),
		Billing:    strings.TrimSpace(billingRaw),
		General:    strings.TrimSpace(generalRaw),
	}
}
