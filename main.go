package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	orchestratorx "github.com/kritsada/helpdesk-agent/agent/agents/orchestrator"
	billingx "github.com/kritsada/helpdesk-agent/agent/billing"
	contractx "github.com/kritsada/helpdesk-agent/agent/contract"
	conversationx "github.com/kritsada/helpdesk-agent/agent/conversation"
	knowledgex "github.com/kritsada/helpdesk-agent/agent/knowledge"
	llmx "github.com/kritsada/helpdesk-agent/agent/llm"
	toolx "github.com/kritsada/helpdesk-agent/agent/tool"
	configx "github.com/kritsada/helpdesk-agent/pkg/config"
	logx "github.com/kritsada/helpdesk-agent/pkg/logger"
	openrouterx "github.com/kritsada/helpdesk-agent/pkg/openrouter"
)

type AppConfig struct {
	SessionID         string `envconfig:"SESSION_ID" split_words:"true" default:"console"`
	RetrievalStrategy string `envconfig:"RETRIEVAL_STRATEGY" split_words:"true" default:"keyword"`
	Debug             bool   `envconfig:"DEBUG" split_words:"true" default:"false"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("APP")
	logx.Init(logx.Config{Debug: appCfg.Debug, PrettyFormat: true})

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid completion service configuration")
	}

	ctx := context.Background()

	gatewayCfg := llmCfg.OpenRouter()
	chatModel, err := gatewayCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create chat model")
	}
	completion, err := llmx.NewClient(chatModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create completion client")
	}

	docs, err := buildContextProvider(ctx, appCfg.RetrievalStrategy, *llmCfg, gatewayCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build context provider")
	}

	desk := billingx.NewRefundDesk()
	registry, err := toolx.NewRegistry([]contractx.ToolSchema{toolx.RefundSchema(desk.Name())}, desk)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build tool registry")
	}

	orch, err := orchestratorx.New(conversationx.NewMemoryStore(), completion, docs, registry, orchestratorx.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build orchestrator")
	}

	runConsole(ctx, orch, appCfg.SessionID)
}

func buildContextProvider(
	ctx context.Context,
	strategy string,
	llmCfg llmx.Config,
	gatewayCfg openrouterx.Config,
) (contractx.ContextProvider, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "vector":
		sdkClient := openrouterx.NewClient(gatewayCfg)
		embedder, err := llmx.NewOpenAIEmbedder(sdkClient, llmCfg.EmbeddingModel)
		if err != nil {
			return nil, err
		}
		return knowledgex.NewVectorProvider(ctx, embedder, knowledgex.DefaultCorpus())
	default:
		return knowledgex.NewKeywordProvider(knowledgex.DefaultCorpus()), nil
	}
}

func runConsole(ctx context.Context, orch *orchestratorx.Orchestrator, sessionID string) {
	fmt.Println("==========================================")
	fmt.Println("   Multi-Agent Support System Online")
	fmt.Println("   Agents: Technical (A) & Billing (B)")
	fmt.Println("==========================================")
	fmt.Println()
	fmt.Println("Type your message or 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("User: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(input, "exit") {
			fmt.Println("Shutting down the system...")
			return
		}
		if input == "" {
			continue
		}

		reply, err := orch.HandleTurn(ctx, sessionID, input)
		if err != nil {
			log.Error().Err(err).Msg("turn failed")
			continue
		}

		fmt.Println("Assistant: " + reply)
		fmt.Println("------------------------------------------")
	}
}
