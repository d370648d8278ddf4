package conversation

import (
	"context"
	"encoding/json"
	"fmt"

	"kai-assistant/internal/application/port/input"
	"kai-assistant/internal/application/port/output"
	"kai-assistant/internal/domain/entity"
	"kai-assistant/internal/infrastructure/prompts"
)

const temperature = 0.7

var _ input.Assistant = (*UseCase)(nil)

// UseCase assembles one model request per call and classifies the single
// response as either a final answer or a set of tool-call requests. It never
// retries and never streams; tool execution belongs to the caller.
type UseCase struct {
	llm    output.LLMPort
	tools  []entity.ToolDefinition
	logger output.LoggerPort
}

// New builds the orchestrator around a fixed tool set. The set is captured at
// construction; tests can pass a smaller one.
func New(llm output.LLMPort, tools []entity.ToolDefinition, logger output.LoggerPort) *UseCase {
	return &UseCase{
		llm:    llm,
		tools:  tools,
		logger: logger,
	}
}

func (uc *UseCase) Converse(ctx context.Context, userMessage string, history []entity.Message, assistantName string) (*input.ConverseResult, error) {
	systemPrompt, err := prompts.GenerateSystemPrompt(assistantName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate system prompt: %w", err)
	}

	// System message first, then history in order, then the live turn.
	messages := make([]entity.Message, 0, len(history)+2)
	messages = append(messages, entity.Message{Role: entity.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, entity.Message{Role: entity.RoleUser, Content: userMessage})

	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages:    messages,
		Tools:       uc.tools,
		Temperature: temperature,
	})
	if err != nil {
		uc.logger.Warn("Chat request failed, returning fallback response", "error", err)
		return uc.fallback(userMessage), nil
	}

	msg := resp.Message

	if len(msg.ToolCalls) == 0 {
		if msg.Content == "" {
			uc.logger.Warn("Model returned an empty message, returning fallback response")
			return uc.fallback(userMessage), nil
		}
		return &input.ConverseResult{Response: msg.Content}, nil
	}

	calls := make([]input.FunctionCall, 0, len(msg.ToolCalls))
	for _, tc := range msg.ToolCalls {
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
			return nil, fmt.Errorf("tool call %q has malformed arguments: %w", tc.Name, err)
		}
		calls = append(calls, input.FunctionCall{Name: tc.Name, Arguments: args})
	}

	uc.logger.Info("Model requested tool calls", "count", len(calls))

	return &input.ConverseResult{
		Response:      msg.Content,
		FunctionCalls: calls,
	}, nil
}

// fallback is the fail-soft path: a transient model error must never surface
// as a hard failure on the conversational surface.
func (uc *UseCase) fallback(userMessage string) *input.ConverseResult {
	return &input.ConverseResult{
		Response: fmt.Sprintf("I received your message: %q. I'm having trouble responding right now, please try again in a moment.", userMessage),
		Degraded: true,
	}
}
