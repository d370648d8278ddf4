package input

import (
	"context"

	"kai-assistant/internal/domain/entity"
)

// FunctionCall is a model-issued request to run one named CRM operation.
// Arguments is already parsed JSON; a call with unparseable arguments never
// reaches the caller.
type FunctionCall struct {
	Name      string
	Arguments map[string]any
}

// ConverseResult is always well-formed. Degraded marks the fail-soft path:
// the upstream model call failed and Response holds a fallback sentence
// instead of a real answer.
type ConverseResult struct {
	Response      string
	FunctionCalls []FunctionCall
	Degraded      bool
}

type Assistant interface {
	Converse(ctx context.Context, userMessage string, history []entity.Message, assistantName string) (*ConverseResult, error)
}
