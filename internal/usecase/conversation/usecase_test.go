package conversation

import (
	"context"
	"errors"
	"testing"

	"kai-assistant/internal/application/port/output"
	"kai-assistant/internal/domain/entity"
	"kai-assistant/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
)

type stubLLM struct {
	lastRequest output.ChatRequest
	response    *output.ChatResponse
	err         error
}

func (s *stubLLM) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

var testTools = []entity.ToolDefinition{
	{
		Name:        "get_student_count",
		Description: "Returns the number of active students",
		Parameters:  map[string]interface{}{"type": "object", "properties": map[string]interface{}{}},
	},
}

func assistantText(content string) *output.ChatResponse {
	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: content},
	}
}

func TestConverse_PlainTextAnswer(t *testing.T) {
	llm := &stubLLM{response: assistantText("You have 42 students.")}
	uc := New(llm, testTools, logger.NewNop())

	result, err := uc.Converse(context.Background(), "how many students?", nil, "Kai")

	assert.NoError(t, err)
	assert.Equal(t, "You have 42 students.", result.Response)
	assert.Nil(t, result.FunctionCalls)
	assert.False(t, result.Degraded)
}

func TestConverse_MessageOrdering(t *testing.T) {
	llm := &stubLLM{response: assistantText("ok")}
	uc := New(llm, testTools, logger.NewNop())

	history := []entity.Message{
		{Role: entity.RoleUser, Content: "earlier question"},
		{Role: entity.RoleAssistant, Content: "earlier answer"},
	}

	_, err := uc.Converse(context.Background(), "new question", history, "Kai")
	assert.NoError(t, err)

	msgs := llm.lastRequest.Messages
	if assert.Len(t, msgs, 4) {
		assert.Equal(t, entity.RoleSystem, msgs[0].Role)
		assert.Contains(t, msgs[0].Content, "Kai")
		assert.Equal(t, "earlier question", msgs[1].Content)
		assert.Equal(t, "earlier answer", msgs[2].Content)
		assert.Equal(t, entity.RoleUser, msgs[3].Role)
		assert.Equal(t, "new question", msgs[3].Content)
	}

	assert.Equal(t, testTools, llm.lastRequest.Tools)
}

func TestConverse_ToolCallsReturnedWithParsedArguments(t *testing.T) {
	llm := &stubLLM{response: &output.ChatResponse{
		Message: entity.Message{
			Role: entity.RoleAssistant,
			ToolCalls: []entity.ToolCall{
				{ID: "call_1", Name: "search_students", Arguments: `{"query":"chen"}`},
				{ID: "call_2", Name: "get_student_count", Arguments: `{}`},
			},
		},
	}}
	uc := New(llm, testTools, logger.NewNop())

	result, err := uc.Converse(context.Background(), "find chen and count everyone", nil, "Kai")

	assert.NoError(t, err)
	if assert.Len(t, result.FunctionCalls, 2) {
		assert.Equal(t, "search_students", result.FunctionCalls[0].Name)
		assert.Equal(t, map[string]any{"query": "chen"}, result.FunctionCalls[0].Arguments)
		assert.Equal(t, "get_student_count", result.FunctionCalls[1].Name)
		assert.Equal(t, map[string]any{}, result.FunctionCalls[1].Arguments)
	}
}

func TestConverse_ToolCallWithAccompanyingText(t *testing.T) {
	llm := &stubLLM{response: &output.ChatResponse{
		Message: entity.Message{
			Role:    entity.RoleAssistant,
			Content: "Let me look that up.",
			ToolCalls: []entity.ToolCall{
				{ID: "call_1", Name: "get_student_count", Arguments: `{}`},
			},
		},
	}}
	uc := New(llm, testTools, logger.NewNop())

	result, err := uc.Converse(context.Background(), "count?", nil, "Kai")

	assert.NoError(t, err)
	assert.Equal(t, "Let me look that up.", result.Response)
	assert.Len(t, result.FunctionCalls, 1)
}

func TestConverse_MalformedArgumentsFailTheTurn(t *testing.T) {
	llm := &stubLLM{response: &output.ChatResponse{
		Message: entity.Message{
			Role: entity.RoleAssistant,
			ToolCalls: []entity.ToolCall{
				{ID: "call_1", Name: "search_students", Arguments: `{"query": `},
			},
		},
	}}
	uc := New(llm, testTools, logger.NewNop())

	result, err := uc.Converse(context.Background(), "find chen", nil, "Kai")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "search_students")
}

func TestConverse_UpstreamErrorReturnsDegradedFallback(t *testing.T) {
	llm := &stubLLM{err: errors.New("upstream unavailable")}
	uc := New(llm, testTools, logger.NewNop())

	result, err := uc.Converse(context.Background(), "how is revenue this month?", nil, "Kai")

	assert.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Nil(t, result.FunctionCalls)
	assert.Contains(t, result.Response, "how is revenue this month?")
}

func TestConverse_EmptyModelMessageReturnsDegradedFallback(t *testing.T) {
	llm := &stubLLM{response: assistantText("")}
	uc := New(llm, testTools, logger.NewNop())

	result, err := uc.Converse(context.Background(), "hello", nil, "Kai")

	assert.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Contains(t, result.Response, "hello")
}

func TestConverse_EmptyUserMessagePassesThrough(t *testing.T) {
	llm := &stubLLM{response: assistantText("Did you mean to send something?")}
	uc := New(llm, testTools, logger.NewNop())

	result, err := uc.Converse(context.Background(), "", nil, "Kai")

	assert.NoError(t, err)
	assert.False(t, result.Degraded)

	msgs := llm.lastRequest.Messages
	assert.Equal(t, entity.RoleUser, msgs[len(msgs)-1].Role)
	assert.Equal(t, "", msgs[len(msgs)-1].Content)
}
