package agent

import (
	"context"

	"todo-chatbot/internal/model"
)

// Tool represents a named, schema-validated operation against the task
// store that the oracle can call.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the oracle).
	Description() string

	// Parameters returns the JSON schema for tool arguments.
	Parameters() map[string]interface{}

	// Execute runs the tool with validated arguments, scoped to sc.
	Execute(ctx context.Context, args map[string]interface{}, sc model.Scope) (ToolResult, error)
}

// ToolRegistry manages available tools. It is constructed once at startup
// and passed to the Dispatcher; there is no module-level registry.
type ToolRegistry struct {
	tools map[string]Tool
	order []string
}

// NewToolRegistry creates an empty tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// ParameterDefinition describes one parameter in the oracle-facing
// tool-definition format.
type ParameterDefinition struct {
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// Definition is the oracle-facing description of a tool. Schema carries
// the raw JSON schema for providers with native function calling;
// ParameterDefinitions is the flattened form, with JSON-schema "string"
// exposed as the oracle's "str" token.
type Definition struct {
	Name                 string                         `json:"name"`
	Description          string                         `json:"description"`
	ParameterDefinitions map[string]ParameterDefinition `json:"parameter_definitions"`
	Schema               map[string]interface{}         `json:"-"`
}

// ToDefinitions exports every registered tool in the oracle-facing
// format. Must be called again whenever the registry changes.
func (r *ToolRegistry) ToDefinitions() []Definition {
	defs := make([]Definition, 0, len(r.tools))
	for _, tool := range r.List() {
		schema := tool.Parameters()
		def := Definition{
			Name:                 tool.Name(),
			Description:          tool.Description(),
			ParameterDefinitions: make(map[string]ParameterDefinition),
			Schema:               schema,
		}

		required := map[string]bool{}
		if reqList, ok := schema["required"].([]string); ok {
			for _, name := range reqList {
				required[name] = true
			}
		}

		props, _ := schema["properties"].(map[string]interface{})
		for paramName, raw := range props {
			details, _ := raw.(map[string]interface{})
			paramType, _ := details["type"].(string)
			if paramType == "" || paramType == "string" {
				paramType = "str"
			}
			description, _ := details["description"].(string)
			def.ParameterDefinitions[paramName] = ParameterDefinition{
				Type:        paramType,
				Required:    required[paramName],
				Description: description,
			}
		}

		defs = append(defs, def)
	}
	return defs
}
