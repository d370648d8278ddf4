package service

import (
	"context"
	"testing"

	"kai-assistant/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

type fakeTool struct {
	name entity.ToolName
}

func (f *fakeTool) Name() entity.ToolName { return f.name }
func (f *fakeTool) Description() string   { return "fake " + f.name.String() }
func (f *fakeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object", "properties": map[string]interface{}{}}
}
func (f *fakeTool) Execute(ctx context.Context, args string) (any, error) {
	return nil, nil
}

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(&fakeTool{name: "b_tool"})
	registry.Register(&fakeTool{name: "a_tool"})

	tool, ok := registry.Get("a_tool")
	assert.True(t, ok)
	assert.Equal(t, entity.ToolName("a_tool"), tool.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestToolRegistry_DefinitionsAreDeterministic(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(&fakeTool{name: "c_tool"})
	registry.Register(&fakeTool{name: "a_tool"})
	registry.Register(&fakeTool{name: "b_tool"})

	defs := registry.Definitions()

	assert.Len(t, defs, 3)
	assert.Equal(t, "a_tool", defs[0].Name)
	assert.Equal(t, "b_tool", defs[1].Name)
	assert.Equal(t, "c_tool", defs[2].Name)
}

func TestToolRegistry_ReRegisterReplaces(t *testing.T) {
	registry := NewToolRegistry()
	first := &fakeTool{name: "tool"}
	second := &fakeTool{name: "tool"}

	registry.Register(first)
	registry.Register(second)

	assert.Len(t, registry.All(), 1)
	got, _ := registry.Get("tool")
	assert.Same(t, second, got)
}
