package di

import (
	"fmt"

	"kai-assistant/internal/application/port/input"
	"kai-assistant/internal/application/port/output"
	"kai-assistant/internal/application/service"
	"kai-assistant/internal/infrastructure/crm"
	"kai-assistant/internal/infrastructure/llm/openrouter"
	"kai-assistant/internal/infrastructure/logger"
	"kai-assistant/internal/usecase/conversation"
	"kai-assistant/internal/usecase/extraction"
)

type Container struct {
	LLM        output.LLMPort
	Logger     output.LoggerPort
	Tools      output.ToolRegistry
	Store      *crm.Store
	Assistant  input.Assistant
	Extraction *extraction.Pipeline
}

type Config struct {
	OpenRouterAPIKey string
	OpenRouterModel  string
	Debug            bool
	LogHTTP          bool
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewZapAdapter(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	if cfg.LogHTTP {
		llmCfg.Logger = log
	}
	llm := openrouter.NewOpenRouterAdapter(llmCfg)

	store := crm.NewDemoStore()
	tools := service.NewToolRegistry()
	crm.RegisterTools(tools, store, log)

	return &Container{
		LLM:        llm,
		Logger:     log,
		Tools:      tools,
		Store:      store,
		Assistant:  conversation.New(llm, tools.Definitions(), log),
		Extraction: extraction.New(llm, log),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
