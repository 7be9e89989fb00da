package agent

import (
	"context"
	"testing"

	"todo-chatbot/internal/model"
)

type stubTool struct {
	name        string
	description string
	schema      map[string]interface{}
	execute     func(ctx context.Context, args map[string]interface{}, sc model.Scope) (ToolResult, error)
}

func (s *stubTool) Name() string                       { return s.name }
func (s *stubTool) Description() string                { return s.description }
func (s *stubTool) Parameters() map[string]interface{} { return s.schema }

func (s *stubTool) Execute(ctx context.Context, args map[string]interface{}, sc model.Scope) (ToolResult, error) {
	return s.execute(ctx, args, sc)
}

func newStubTool(name string) *stubTool {
	return &stubTool{
		name:        name,
		description: name + " tool",
		schema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		execute: func(ctx context.Context, args map[string]interface{}, sc model.Scope) (ToolResult, error) {
			return ToolResult{Success: true}, nil
		},
	}
}

func TestToolRegistry_RegistrationOrder(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(newStubTool("beta"))
	registry.Register(newStubTool("alpha"))
	registry.Register(newStubTool("gamma"))

	var names []string
	for _, tool := range registry.List() {
		names = append(names, tool.Name())
	}

	want := []string{"beta", "alpha", "gamma"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestToolRegistry_ReRegisterReplaces(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(newStubTool("alpha"))

	replacement := newStubTool("alpha")
	replacement.description = "replacement"
	registry.Register(replacement)

	if got := len(registry.List()); got != 1 {
		t.Fatalf("len(List()) = %d, want 1", got)
	}
	tool, ok := registry.Get("alpha")
	if !ok || tool.Description() != "replacement" {
		t.Errorf("Get(alpha) = %v, %v; want the replacement", tool, ok)
	}
}

func TestToDefinitions_StringBecomesStr(t *testing.T) {
	tool := newStubTool("add_task")
	tool.schema = map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Title of the task",
			},
			"task_id": map[string]interface{}{
				"type":        "integer",
				"description": "Task id",
			},
			"completed": map[string]interface{}{
				"type": "boolean",
			},
		},
		"required": []string{"title"},
	}

	registry := NewToolRegistry()
	registry.Register(tool)

	defs := registry.ToDefinitions()
	if len(defs) != 1 {
		t.Fatalf("len(defs) = %d, want 1", len(defs))
	}
	def := defs[0]
	if def.Name != "add_task" {
		t.Errorf("Name = %q, want add_task", def.Name)
	}

	title := def.ParameterDefinitions["title"]
	if title.Type != "str" {
		t.Errorf("title type = %q, want str", title.Type)
	}
	if !title.Required {
		t.Error("title should be required")
	}
	if title.Description != "Title of the task" {
		t.Errorf("title description = %q", title.Description)
	}

	if got := def.ParameterDefinitions["task_id"].Type; got != "integer" {
		t.Errorf("task_id type = %q, want integer", got)
	}
	if def.ParameterDefinitions["completed"].Required {
		t.Error("completed should not be required")
	}
	if def.Schema == nil {
		t.Error("raw schema should be carried alongside")
	}
}
