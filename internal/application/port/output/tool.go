package output

import (
	"context"

	"kai-assistant/internal/domain/entity"
)

// ToolPort is one CRM operation the assistant can request. Execute returns a
// decoded-JSON-shaped value (map[string]any, []any, or nil), the shape
// FunctionResult carries.
type ToolPort interface {
	Name() entity.ToolName
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, arguments string) (any, error)
}

type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	Definitions() []entity.ToolDefinition
}
